package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	ID              int64
	Date            time.Time
	Category        string
	ItemType        string
	Unit            string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	TransactionType string
	CashCredit      string
	PartyName       string
	VehicleName     string
	SiteName        string
	Remarks         string
}
