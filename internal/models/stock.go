package models

import "github.com/shopspring/decimal"

// StockSummary mirrors a row of the stock_summary table, unique on the triple.
type StockSummary struct {
	Category     string
	ItemType     string
	Unit         string
	CurrentStock decimal.Decimal
}
