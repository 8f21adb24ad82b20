package services

import (
	"context"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
)

// LedgerSvcFacade exposes the transaction log and stock ledger operations.
type LedgerSvcFacade interface {
	// InsertTransactions validates, normalizes and appends every line of the
	// bill, adjusting stock atomically per line. No line is written if any
	// line fails validation.
	InsertTransactions(ctx context.Context, req dto.CreateBillRequest) ([]int64, error)

	// DeleteTransactions removes each id independently, reversing its stock
	// contribution; missing ids are skipped. Returns the number deleted.
	DeleteTransactions(ctx context.Context, ids []int64) (int, error)

	// ListTransactions returns matching transactions, newest first.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// QueryStock returns stock ledger rows, optionally filtered.
	QueryStock(ctx context.Context, category, itemType string) ([]domain.StockLevel, error)
}

// StockAuditSvcFacade verifies the materialized stock ledger against the log.
type StockAuditSvcFacade interface {
	// Audit recomputes per-key sums from live transactions and returns every
	// key whose materialized balance diverges.
	Audit(ctx context.Context) ([]domain.StockDiscrepancy, error)
}
