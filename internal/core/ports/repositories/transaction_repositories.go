package repositories

import (
	"context"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// TransactionReader defines read operations for the transaction log.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction; apperrors.ErrNotFound if absent.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// FindTransactionsByIDs retrieves the subset of the given ids that exist,
	// newest first. Missing ids are simply absent from the result.
	FindTransactionsByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first by id.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction log.
//
// Both methods pair the log mutation with the matching stock_summary
// adjustment inside a single storage transaction; a failed adjustment means
// the log mutation is not committed either.
type TransactionWriter interface {
	// SaveTransaction appends a transaction and applies its quantity to the
	// stock ledger atomically, returning the assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// DeleteTransaction removes a transaction and applies the exact inverse
	// stock adjustment atomically. Returns apperrors.ErrNotFound if the id
	// does not exist; callers treat that as a no-op.
	DeleteTransaction(ctx context.Context, id int64) error
}

// TransactionRepositoryFacade combines all transaction log operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
