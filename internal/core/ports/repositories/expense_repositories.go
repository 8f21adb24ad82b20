package repositories

import (
	"context"
	"time"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// ExpenseReader defines read operations for the expense log.
type ExpenseReader interface {
	// ListExpenses retrieves expenses dated at or after since, newest first by
	// id. A zero since returns all expenses.
	ListExpenses(ctx context.Context, since time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for the expense log.
type ExpenseWriter interface {
	// SaveExpense appends an expense and returns the assigned id.
	SaveExpense(ctx context.Context, expense domain.Expense) (int64, error)

	// DeleteExpense removes an expense; apperrors.ErrNotFound if the id does not exist.
	DeleteExpense(ctx context.Context, id int64) error
}

// ExpenseRepositoryFacade combines all expense log operations.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
