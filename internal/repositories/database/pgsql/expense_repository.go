package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
	"github.com/sunnytraders/inventory_pro_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for the expense log.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense appends an expense and returns the assigned id.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (exp_date, expense_type, amount, remarks)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, m.Date, m.ExpenseType, m.Amount, m.Remarks).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}
	return id, nil
}

// ListExpenses retrieves expenses dated at or after since, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, since time.Time) ([]domain.Expense, error) {
	query := `SELECT id, exp_date, expense_type, amount, remarks FROM expenses`
	var args []any
	if !since.IsZero() {
		query += ` WHERE exp_date >= $1`
		args = append(args, since)
	}
	query += ` ORDER BY id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var out []models.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ID, &m.Date, &m.ExpenseType, &m.Amount, &m.Remarks); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(out), nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
