package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// BillLineRequest is one item line of a new bill. Quantity is unsigned here;
// the engine applies the sale/purchase sign convention.
type BillLineRequest struct {
	Category        string          `json:"category" binding:"required"`
	ItemType        string          `json:"itemType" binding:"required"`
	Unit            string          `json:"unit" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Rate            decimal.Decimal `json:"rate"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=sale purchase"`
	CashCredit      string          `json:"cashCredit" binding:"required,oneof=cash credit"`
	Remarks         string          `json:"remarks"`
}

// CreateBillRequest records a bill: shared header details plus item lines,
// each persisted as one transaction.
type CreateBillRequest struct {
	PartyName   string            `json:"partyName" binding:"required"`
	VehicleName string            `json:"vehicleName"`
	SiteName    string            `json:"siteName"`
	Lines       []BillLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// CreateBillResponse returns the ids assigned to the persisted lines.
type CreateBillResponse struct {
	TransactionIDs []int64 `json:"transactionIDs"`
}

// TransactionResponse is the API representation of a logged transaction.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category"`
	ItemType        string          `json:"itemType"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	CashCredit      string          `json:"cashCredit"`
	PartyName       string          `json:"partyName"`
	VehicleName     string          `json:"vehicleName"`
	SiteName        string          `json:"siteName"`
	Remarks         string          `json:"remarks"`
}

// ToTransactionResponse converts a domain transaction to its API form.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		Date:            t.Date,
		Category:        t.Category,
		ItemType:        t.ItemType,
		Unit:            t.Unit,
		Quantity:        t.Quantity,
		Rate:            t.Rate,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		CashCredit:      string(t.CashCredit),
		PartyName:       t.PartyName,
		VehicleName:     t.VehicleName,
		SiteName:        t.SiteName,
		Remarks:         t.Remarks,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ListTransactionsResponse wraps the newest-first transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// DeleteByIDsRequest selects records for best-effort bulk deletion.
type DeleteByIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// DeleteResponse reports how many of the requested records actually existed
// and were removed.
type DeleteResponse struct {
	Deleted int `json:"deleted"`
}
