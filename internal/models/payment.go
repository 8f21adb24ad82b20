package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors a row of the payments table.
type Payment struct {
	ID          int64
	Date        time.Time
	PartyName   string
	PaymentType string
	Amount      decimal.Decimal
	Remarks     string
}
