package domain

import "github.com/shopspring/decimal"

// StockKey is the (category, item type, unit) triple a ledger row is keyed by.
// The key space is open: any triple ever posted stays a ledger row even if the
// catalog later drops it.
type StockKey struct {
	Category string `json:"category"`
	ItemType string `json:"itemType"`
	Unit     string `json:"unit"`
}

// StockLevel is a materialized running balance for one key: the signed sum of
// quantity over all currently existing transactions with that key. Negative
// balances (oversold) are valid and simply surfaced.
type StockLevel struct {
	StockKey
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// StockDiscrepancy reports a divergence between the materialized summary and
// the sum recomputed from the live transaction log.
type StockDiscrepancy struct {
	StockKey
	Materialized decimal.Decimal `json:"materialized"`
	Recomputed   decimal.Decimal `json:"recomputed"`
}
