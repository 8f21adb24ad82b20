package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
)

// Expense is an operating expense, independent of stock and party accounting.
// It only feeds dashboard profit computation.
type Expense struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	ExpenseType string          `json:"expenseType"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     string          `json:"remarks"`
}

// NewExpense validates and builds an operating expense record.
func NewExpense(date time.Time, expenseType string, amount decimal.Decimal, remarks string) (Expense, error) {
	if expenseType == "" {
		return Expense{}, fmt.Errorf("%w: expense type is required", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Expense{}, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, amount)
	}
	return Expense{
		Date:        date.UTC().Truncate(time.Minute),
		ExpenseType: expenseType,
		Amount:      amount,
		Remarks:     remarks,
	}, nil
}
