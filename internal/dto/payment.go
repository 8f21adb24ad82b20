package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// CreatePaymentRequest records a settlement payment against a party.
type CreatePaymentRequest struct {
	PartyName   string          `json:"partyName" binding:"required"`
	PaymentType string          `json:"paymentType" binding:"required,oneof=Inward Outward"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Remarks     string          `json:"remarks"`
}

// PaymentResponse is the API representation of a settlement payment.
type PaymentResponse struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	PartyName   string          `json:"partyName"`
	PaymentType string          `json:"paymentType"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     string          `json:"remarks"`
}

// ToPaymentResponse converts a domain payment to its API form.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Date:        p.Date,
		PartyName:   p.PartyName,
		PaymentType: string(p.PaymentType),
		Amount:      p.Amount,
		Remarks:     p.Remarks,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(ps []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		out[i] = ToPaymentResponse(p)
	}
	return out
}

// ListPaymentsResponse wraps the newest-first payment listing.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}
