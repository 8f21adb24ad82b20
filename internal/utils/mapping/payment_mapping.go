package mapping

import (
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
)

// ToModelPayment converts a domain payment to its DB row representation.
func ToModelPayment(p domain.Payment) models.Payment {
	return models.Payment{
		ID:          p.ID,
		Date:        p.Date,
		PartyName:   p.PartyName,
		PaymentType: string(p.PaymentType),
		Amount:      p.Amount,
		Remarks:     p.Remarks,
	}
}

// ToDomainPayment converts a DB row to the domain representation.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:          m.ID,
		Date:        m.Date,
		PartyName:   m.PartyName,
		PaymentType: domain.PaymentDirection(m.PaymentType),
		Amount:      m.Amount,
		Remarks:     m.Remarks,
	}
}

// ToDomainPaymentSlice converts a slice of payment rows.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}
