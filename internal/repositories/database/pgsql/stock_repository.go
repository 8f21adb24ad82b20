package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
	"github.com/sunnytraders/inventory_pro_app/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for the materialized stock ledger.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

// ListStock retrieves ledger rows, optionally filtered by category and/or item type.
func (r *PgxStockRepository) ListStock(ctx context.Context, category, itemType string) ([]domain.StockLevel, error) {
	var conditions []string
	var args []any

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if itemType != "" {
		args = append(args, itemType)
		conditions = append(conditions, "item_type = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT category, item_type, unit, current_stock FROM stock_summary`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY category, item_type, unit;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock summary: %w", err)
	}
	defer rows.Close()

	var out []models.StockSummary
	for rows.Next() {
		var m models.StockSummary
		if err := rows.Scan(&m.Category, &m.ItemType, &m.Unit, &m.CurrentStock); err != nil {
			return nil, fmt.Errorf("failed to scan stock summary row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating stock summary rows: %w", err)
	}
	return mapping.ToDomainStockLevelSlice(out), nil
}

// SumLiveQuantities recomputes per-key stock balances from the transaction log.
func (r *PgxStockRepository) SumLiveQuantities(ctx context.Context) (map[domain.StockKey]decimal.Decimal, error) {
	query := `
		SELECT category, item_type, unit, COALESCE(SUM(quantity), 0)
		FROM transactions
		GROUP BY category, item_type, unit;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transaction quantities: %w", err)
	}
	defer rows.Close()

	sums := make(map[domain.StockKey]decimal.Decimal)
	for rows.Next() {
		var key domain.StockKey
		var sum decimal.Decimal
		if err := rows.Scan(&key.Category, &key.ItemType, &key.Unit, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan quantity sum row: %w", err)
		}
		sums[key] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating quantity sum rows: %w", err)
	}
	return sums, nil
}
