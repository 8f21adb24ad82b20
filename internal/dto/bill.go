package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildBillRequest selects transactions for a printable bill. When IDs is
// non-empty the bill is built from that manual id list (non-numeric tokens are
// ignored); otherwise PartyName is required and SiteName/From/To
// (YYYY-MM-DD) narrow the selection.
type BuildBillRequest struct {
	PartyName string `json:"partyName"`
	SiteName  string `json:"siteName"`
	From      string `json:"from"`
	To        string `json:"to"`
	IDs       string `json:"ids"`
}

// BillLineResponse is one printed line; quantity and amount are absolute
// values for billing display.
type BillLineResponse struct {
	Date     time.Time       `json:"date"`
	ItemType string          `json:"itemType"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Rate     decimal.Decimal `json:"rate"`
	Amount   decimal.Decimal `json:"amount"`
}

// BillResponse is the assembled printable bill.
type BillResponse struct {
	PartyName   string             `json:"partyName"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Lines       []BillLineResponse `json:"lines"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
}
