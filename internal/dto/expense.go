package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// CreateExpenseRequest records an operating expense. Date is optional
// (YYYY-MM-DD); today is used when omitted.
type CreateExpenseRequest struct {
	ExpenseType string          `json:"expenseType" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date"`
	Remarks     string          `json:"remarks"`
}

// ExpenseResponse is the API representation of an operating expense.
type ExpenseResponse struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	ExpenseType string          `json:"expenseType"`
	Amount      decimal.Decimal `json:"amount"`
	Remarks     string          `json:"remarks"`
}

// ToExpenseResponse converts a domain expense to its API form.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Date:        e.Date,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		Remarks:     e.Remarks,
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(es []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i, e := range es {
		out[i] = ToExpenseResponse(e)
	}
	return out
}

// ListExpensesResponse wraps the newest-first expense listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
