package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// settlementService records payments against party running balances. There is
// no invoice matching; a payment simply reduces the party's outstanding net.
type settlementService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewSettlementService creates the payment recording service.
func NewSettlementService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.SettlementSvcFacade {
	return &settlementService{paymentRepo: paymentRepo}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// RecordPayment validates and appends a settlement payment.
func (s *settlementService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := domain.NewPayment(time.Now(), req.PartyName, domain.PaymentDirection(req.PaymentType), req.Amount, req.Remarks)
	if err != nil {
		return nil, err
	}

	id, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		logger.Error("Failed to save payment", slog.String("party", payment.PartyName), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	payment.ID = id

	logger.Info("Payment recorded", slog.String("party", payment.PartyName), slog.String("direction", string(payment.PaymentType)))
	return &payment, nil
}

// ListPayments returns payments newest first, optionally restricted to one party.
func (s *settlementService) ListPayments(ctx context.Context, partyName string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, partyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// DeletePayments removes each id independently; missing ids are skipped.
func (s *settlementService) DeletePayments(ctx context.Context, ids []int64) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted := 0
	for _, id := range ids {
		err := s.paymentRepo.DeletePayment(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return deleted, fmt.Errorf("failed to delete payment %d: %w", id, err)
		}
		deleted++
	}

	logger.Info("Payments deleted", slog.Int("requested", len(ids)), slog.Int("deleted", deleted))
	return deleted, nil
}
