package repositories

import (
	"context"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// PaymentReader defines read operations for the payment log.
type PaymentReader interface {
	// ListPayments retrieves payments, newest first by id. An empty partyName
	// returns all payments.
	ListPayments(ctx context.Context, partyName string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for the payment log.
type PaymentWriter interface {
	// SavePayment appends a payment and returns the assigned id.
	SavePayment(ctx context.Context, payment domain.Payment) (int64, error)

	// DeletePayment removes a payment; apperrors.ErrNotFound if the id does not exist.
	DeletePayment(ctx context.Context, id int64) error
}

// PaymentRepositoryFacade combines all payment log operations.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
