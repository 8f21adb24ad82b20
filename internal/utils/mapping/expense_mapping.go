package mapping

import (
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
)

// ToModelExpense converts a domain expense to its DB row representation.
func ToModelExpense(e domain.Expense) models.Expense {
	return models.Expense{
		ID:          e.ID,
		Date:        e.Date,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		Remarks:     e.Remarks,
	}
}

// ToDomainExpense converts a DB row to the domain representation.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ID:          m.ID,
		Date:        m.Date,
		ExpenseType: m.ExpenseType,
		Amount:      m.Amount,
		Remarks:     m.Remarks,
	}
}

// ToDomainExpenseSlice converts a slice of expense rows.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	out := make([]domain.Expense, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExpense(m)
	}
	return out
}
