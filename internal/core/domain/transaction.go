package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
)

// TransactionType indicates whether a transaction moves stock out (sale) or in (purchase).
type TransactionType string

const (
	Sale     TransactionType = "sale"
	Purchase TransactionType = "purchase"
)

// CashCredit indicates how a transaction was settled at the time of trade.
// Credit transactions feed the outstanding party balance until settled via a Payment.
type CashCredit string

const (
	Cash   CashCredit = "cash"
	Credit CashCredit = "credit"
)

// Transaction is a single line of the append-only purchase/sale log.
//
// Quantity is signed: positive for purchases, negative for sales. Amount is
// always the unsigned magnitude |quantity| x rate; the signed contribution to
// stock comes from Quantity alone. Records are immutable once written and can
// only be removed as a whole.
type Transaction struct {
	ID              int64           `json:"id"`
	Date            time.Time       `json:"date"`
	Category        string          `json:"category"`
	ItemType        string          `json:"itemType"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	CashCredit      CashCredit      `json:"cashCredit"`
	PartyName       string          `json:"partyName"`
	VehicleName     string          `json:"vehicleName"`
	SiteName        string          `json:"siteName"`
	Remarks         string          `json:"remarks"`
}

// NewTransaction builds a normalized transaction from raw form input.
// The caller supplies an unsigned quantity; the sign convention
// (purchase positive, sale negative) is applied here and nowhere else.
func NewTransaction(date time.Time, category, itemType, unit string, quantity, rate decimal.Decimal, txnType TransactionType, cashCredit CashCredit, partyName, vehicleName, siteName, remarks string) (Transaction, error) {
	if partyName == "" {
		return Transaction{}, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return Transaction{}, fmt.Errorf("%w: quantity must be positive, got %s", apperrors.ErrValidation, quantity)
	}
	if rate.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: rate must not be negative, got %s", apperrors.ErrValidation, rate)
	}
	switch txnType {
	case Sale, Purchase:
	default:
		return Transaction{}, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txnType)
	}
	switch cashCredit {
	case Cash, Credit:
	default:
		return Transaction{}, fmt.Errorf("%w: unknown cash/credit mode %q", apperrors.ErrValidation, cashCredit)
	}

	signedQty := quantity
	if txnType == Sale {
		signedQty = quantity.Neg()
	}

	return Transaction{
		Date:            date.UTC().Truncate(time.Minute),
		Category:        category,
		ItemType:        itemType,
		Unit:            unit,
		Quantity:        signedQty,
		Rate:            rate,
		Amount:          quantity.Mul(rate),
		TransactionType: txnType,
		CashCredit:      cashCredit,
		PartyName:       partyName,
		VehicleName:     vehicleName,
		SiteName:        siteName,
		Remarks:         remarks,
	}, nil
}

// StockKey identifies the ledger row this transaction contributes to.
func (t Transaction) StockKey() StockKey {
	return StockKey{Category: t.Category, ItemType: t.ItemType, Unit: t.Unit}
}

// TransactionFilter narrows ListTransactions results. Zero values mean "no filter".
type TransactionFilter struct {
	PartyName       string
	TransactionType TransactionType
	Search          string
	Since           time.Time
}
