package services

import (
	"context"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
)

// SettlementSvcFacade exposes settlement payment recording.
type SettlementSvcFacade interface {
	// RecordPayment validates and appends a settlement payment.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// ListPayments returns payments newest first, optionally for one party.
	ListPayments(ctx context.Context, partyName string) ([]domain.Payment, error)

	// DeletePayments removes each id independently, skipping missing ids.
	DeletePayments(ctx context.Context, ids []int64) (int, error)
}

// ExpenseSvcFacade exposes operating expense recording.
type ExpenseSvcFacade interface {
	// RecordExpense validates and appends an operating expense.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses returns expenses newest first.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// DeleteExpenses removes each id independently, skipping missing ids.
	DeleteExpenses(ctx context.Context, ids []int64) (int, error)
}

// BalanceSvcFacade derives outstanding party balances on demand.
type BalanceSvcFacade interface {
	// ComputeBalances recomputes the per-party outstanding positions from the
	// credit transactions and the payment log. Never cached.
	ComputeBalances(ctx context.Context) (*domain.BalanceSummary, error)
}
