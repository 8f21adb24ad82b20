package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
	"github.com/sunnytraders/inventory_pro_app/internal/utils/mapping"
)

// stockUpsertQuery folds a signed quantity into the materialized ledger,
// creating the row on first sight of the key.
const stockUpsertQuery = `
	INSERT INTO stock_summary (category, item_type, unit, current_stock)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (category, item_type, unit)
	DO UPDATE SET current_stock = stock_summary.current_stock + EXCLUDED.current_stock;
`

const transactionColumns = `id, txn_date, category, item_type, unit, quantity, rate, amount,
		transaction_type, cash_credit, party_name, vehicle_name, site_name, remarks`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the transaction log.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the log row and applies its signed quantity to the
// stock ledger inside one DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Ignored once committed

	modelTxn := mapping.ToModelTransaction(txn)
	insertQuery := `
		INSERT INTO transactions (
			txn_date, category, item_type, unit, quantity, rate, amount,
			transaction_type, cash_credit, party_name, vehicle_name, site_name, remarks
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;
	`
	var id int64
	err = tx.QueryRow(ctx, insertQuery,
		modelTxn.Date,
		modelTxn.Category,
		modelTxn.ItemType,
		modelTxn.Unit,
		modelTxn.Quantity,
		modelTxn.Rate,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.CashCredit,
		modelTxn.PartyName,
		modelTxn.VehicleName,
		modelTxn.SiteName,
		modelTxn.Remarks,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	_, err = tx.Exec(ctx, stockUpsertQuery, modelTxn.Category, modelTxn.ItemType, modelTxn.Unit, modelTxn.Quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust stock for transaction %d: %w", id, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteTransaction removes the log row and applies the exact inverse stock
// adjustment inside one DB transaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var m models.Transaction
	selectQuery := `
		SELECT category, item_type, unit, quantity
		FROM transactions
		WHERE id = $1
		FOR UPDATE;
	`
	err = tx.QueryRow(ctx, selectQuery, id).Scan(&m.Category, &m.ItemType, &m.Unit, &m.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load transaction %d for delete: %w", id, err)
	}

	_, err = tx.Exec(ctx, stockUpsertQuery, m.Category, m.ItemType, m.Unit, m.Quantity.Neg())
	if err != nil {
		return fmt.Errorf("failed to reverse stock for transaction %d: %w", id, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`
	row := r.Pool.QueryRow(ctx, query, id)

	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", id, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsByIDs retrieves the subset of the given ids that exist.
func (r *PgxTransactionRepository) FindTransactionsByIDs(ctx context.Context, ids []int64) ([]domain.Transaction, error) {
	if len(ids) == 0 {
		return []domain.Transaction{}, nil
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ANY($1) ORDER BY id DESC;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by ids: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var conditions []string
	var args []any

	addArg := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, strings.Replace(clause, "?", "$"+strconv.Itoa(len(args)), 1))
	}

	if filter.PartyName != "" {
		addArg("party_name = ?", filter.PartyName)
	}
	if filter.TransactionType != "" {
		addArg("transaction_type = ?", string(filter.TransactionType))
	}
	if !filter.Since.IsZero() {
		addArg("txn_date >= ?", filter.Since)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		p := "$" + strconv.Itoa(len(args))
		conditions = append(conditions, fmt.Sprintf(
			"(party_name ILIKE %s OR item_type ILIKE %s OR vehicle_name ILIKE %s OR site_name ILIKE %s OR remarks ILIKE %s)",
			p, p, p, p, p))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID,
		&m.Date,
		&m.Category,
		&m.ItemType,
		&m.Unit,
		&m.Quantity,
		&m.Rate,
		&m.Amount,
		&m.TransactionType,
		&m.CashCredit,
		&m.PartyName,
		&m.VehicleName,
		&m.SiteName,
		&m.Remarks,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(out), nil
}
