package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
)

// PaymentDirection distinguishes money received from a client (Inward) from
// money paid to a supplier (Outward).
type PaymentDirection string

const (
	Inward  PaymentDirection = "Inward"
	Outward PaymentDirection = "Outward"
)

// Payment is a settlement against a party's running balance. No linkage is
// kept to the transactions it settles; settlement is not invoice matching.
type Payment struct {
	ID          int64            `json:"id"`
	Date        time.Time        `json:"date"`
	PartyName   string           `json:"partyName"`
	PaymentType PaymentDirection `json:"paymentType"`
	Amount      decimal.Decimal  `json:"amount"`
	Remarks     string           `json:"remarks"`
}

// NewPayment validates and builds a settlement payment.
func NewPayment(date time.Time, partyName string, direction PaymentDirection, amount decimal.Decimal, remarks string) (Payment, error) {
	if partyName == "" {
		return Payment{}, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}
	switch direction {
	case Inward, Outward:
	default:
		return Payment{}, fmt.Errorf("%w: unknown payment direction %q", apperrors.ErrValidation, direction)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Payment{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	return Payment{
		Date:        date.UTC().Truncate(time.Minute),
		PartyName:   partyName,
		PaymentType: direction,
		Amount:      amount,
		Remarks:     remarks,
	}, nil
}
