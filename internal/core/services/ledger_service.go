package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
)

// ledgerService maintains the append-only transaction log and the
// materialized stock ledger derived from it.
type ledgerService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	stockRepo portsrepo.StockRepositoryFacade
	catalog   *catalog.Catalog
}

// NewLedgerService creates the transaction log / stock ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, stockRepo portsrepo.StockRepositoryFacade, cat *catalog.Catalog) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:   txnRepo,
		stockRepo: stockRepo,
		catalog:   cat,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// InsertTransactions validates every line before writing any of them, then
// appends them one by one. Each append pairs the log write with the stock
// upsert inside a single repository transaction.
func (s *ledgerService) InsertTransactions(ctx context.Context, req dto.CreateBillRequest) ([]int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: a bill needs at least one item line", apperrors.ErrValidation)
	}

	now := time.Now()
	txns := make([]domain.Transaction, 0, len(req.Lines))
	for i, line := range req.Lines {
		if err := s.catalog.Validate(line.Category, line.ItemType, line.Unit); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		txn, err := domain.NewTransaction(
			now,
			line.Category, line.ItemType, line.Unit,
			line.Quantity, line.Rate,
			domain.TransactionType(line.TransactionType),
			domain.CashCredit(line.CashCredit),
			req.PartyName, req.VehicleName, req.SiteName,
			line.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		txns = append(txns, txn)
	}

	ids := make([]int64, 0, len(txns))
	for _, txn := range txns {
		id, err := s.txnRepo.SaveTransaction(ctx, txn)
		if err != nil {
			logger.Error("Failed to save transaction", slog.String("party", txn.PartyName), slog.String("error", err.Error()))
			return ids, fmt.Errorf("failed to save transaction for %s/%s: %w", txn.Category, txn.ItemType, err)
		}
		ids = append(ids, id)
	}

	logger.Info("Bill recorded", slog.String("party", req.PartyName), slog.Int("lines", len(ids)))
	return ids, nil
}

// DeleteTransactions removes each id independently. A missing id is a no-op,
// not an error, so bulk deletes of stale selections degrade gracefully. Each
// removal reverses the record's stock contribution atomically with the delete.
func (s *ledgerService) DeleteTransactions(ctx context.Context, ids []int64) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted := 0
	for _, id := range ids {
		err := s.txnRepo.DeleteTransaction(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Debug("Skipping delete of missing transaction", slog.Int64("id", id))
				continue
			}
			return deleted, fmt.Errorf("failed to delete transaction %d: %w", id, err)
		}
		deleted++
	}

	logger.Info("Transactions deleted", slog.Int("requested", len(ids)), slog.Int("deleted", deleted))
	return deleted, nil
}

// ListTransactions returns log entries matching the filter, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// QueryStock returns stock ledger rows. The catalog is deliberately not
// consulted here: rows for retired catalog entries stay visible.
func (s *ledgerService) QueryStock(ctx context.Context, category, itemType string) ([]domain.StockLevel, error) {
	levels, err := s.stockRepo.ListStock(ctx, category, itemType)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock: %w", err)
	}
	return levels, nil
}
