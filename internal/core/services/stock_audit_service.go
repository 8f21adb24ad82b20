package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// stockAuditService cross-checks the materialized stock ledger against the
// sum of live transaction quantities. The two are updated in one storage
// transaction, so any divergence found here points at a bug or external data
// tampering.
type stockAuditService struct {
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockAuditService creates the ledger consistency checker.
func NewStockAuditService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockAuditSvcFacade {
	return &stockAuditService{stockRepo: stockRepo}
}

var _ portssvc.StockAuditSvcFacade = (*stockAuditService)(nil)

// Audit returns every key whose materialized balance differs from the
// recomputed sum. An empty result means the ledger invariant holds.
func (s *stockAuditService) Audit(ctx context.Context) ([]domain.StockDiscrepancy, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	levels, err := s.stockRepo.ListStock(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load stock summary for audit: %w", err)
	}
	recomputed, err := s.stockRepo.SumLiveQuantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute stock sums for audit: %w", err)
	}

	var discrepancies []domain.StockDiscrepancy
	seen := make(map[domain.StockKey]bool, len(levels))
	for _, level := range levels {
		seen[level.StockKey] = true
		want := recomputed[level.StockKey]
		if !level.CurrentStock.Equal(want) {
			discrepancies = append(discrepancies, domain.StockDiscrepancy{
				StockKey:     level.StockKey,
				Materialized: level.CurrentStock,
				Recomputed:   want,
			})
		}
	}
	// Keys with live transactions but no summary row at all.
	for key, sum := range recomputed {
		if !seen[key] && !sum.IsZero() {
			discrepancies = append(discrepancies, domain.StockDiscrepancy{
				StockKey:   key,
				Recomputed: sum,
			})
		}
	}

	sort.Slice(discrepancies, func(i, j int) bool {
		a, b := discrepancies[i].StockKey, discrepancies[j].StockKey
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.ItemType != b.ItemType {
			return a.ItemType < b.ItemType
		}
		return a.Unit < b.Unit
	})

	if len(discrepancies) > 0 {
		logger.Error("Stock ledger diverged from transaction log", slog.Int("keys", len(discrepancies)))
	} else {
		logger.Debug("Stock ledger consistent with transaction log")
	}
	return discrepancies, nil
}
