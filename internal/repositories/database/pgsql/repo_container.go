package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		StockRepo:       newPgxStockRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
	}
}
