package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense mirrors a row of the expenses table.
type Expense struct {
	ID          int64
	Date        time.Time
	ExpenseType string
	Amount      decimal.Decimal
	Remarks     string
}
