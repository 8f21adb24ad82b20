package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
	"github.com/sunnytraders/inventory_pro_app/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for the payment log.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment appends a payment and returns the assigned id.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (int64, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (pay_date, party_name, payment_type, amount, remarks)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, m.Date, m.PartyName, m.PaymentType, m.Amount, m.Remarks).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert payment: %w", err)
	}
	return id, nil
}

// ListPayments retrieves payments newest first, optionally for one party.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, partyName string) ([]domain.Payment, error) {
	query := `SELECT id, pay_date, party_name, payment_type, amount, remarks FROM payments`
	var args []any
	if partyName != "" {
		query += ` WHERE party_name = $1`
		args = append(args, partyName)
	}
	query += ` ORDER BY id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var out []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.ID, &m.Date, &m.PartyName, &m.PaymentType, &m.Amount, &m.Remarks); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(out), nil
}

// DeletePayment removes a payment row.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, id int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
