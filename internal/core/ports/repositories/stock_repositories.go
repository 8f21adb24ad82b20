package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// StockReader defines read operations for the materialized stock ledger.
type StockReader interface {
	// ListStock retrieves ledger rows, optionally filtered by category and/or
	// item type. Empty filters return all rows.
	ListStock(ctx context.Context, category, itemType string) ([]domain.StockLevel, error)
}

// StockAuditor recomputes stock balances from the source log, used to verify
// the materialized summary.
type StockAuditor interface {
	// SumLiveQuantities returns the signed sum of quantity per key over all
	// currently existing transactions.
	SumLiveQuantities(ctx context.Context) (map[domain.StockKey]decimal.Decimal, error)
}

// StockRepositoryFacade combines stock ledger read and audit operations.
// Writes happen only through TransactionWriter, which owns the atomicity of
// the log-write + ledger-adjust pair.
type StockRepositoryFacade interface {
	StockReader
	StockAuditor
}
