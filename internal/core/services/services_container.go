package services

import (
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cat *catalog.Catalog, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:     NewLedgerService(repos.TransactionRepo, repos.StockRepo, cat),
		Settlement: NewSettlementService(repos.PaymentRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Balance:    NewBalanceService(repos.TransactionRepo, repos.PaymentRepo),
		Reporting:  NewReportingService(repos.TransactionRepo, repos.ExpenseRepo),
		Billing:    NewBillingService(repos.TransactionRepo),
		StockAudit: NewStockAuditService(repos.StockRepo),
	}
}
