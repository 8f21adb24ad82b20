package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
	"github.com/sunnytraders/inventory_pro_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cat *catalog.Catalog,
	writeLimiter gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, cat, writeLimiter)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	cat *catalog.Catalog,
	writeLimiter gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, services.Ledger, writeLimiter)
	registerStockRoutes(v1, services.Ledger, services.StockAudit)
	registerPaymentRoutes(v1, services.Settlement, writeLimiter)
	registerExpenseRoutes(v1, services.Expense, writeLimiter)
	registerBalanceRoutes(v1, services.Balance)
	registerBillRoutes(v1, services.Billing)
	registerCatalogRoutes(v1, cat)
	registerDashboardRoutes(v1, services.Reporting, cfg.DashboardPassphraseHash)
}
