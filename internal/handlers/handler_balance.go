package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// balanceHandler handles HTTP requests for derived party balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers the balance summary route.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)
	rg.GET("/balances", h.getBalances)
}

// getBalances godoc
// @Summary Get party balances
// @Description Recomputes per-party outstanding receivable/payable positions from credit transactions and payments
// @Tags balances
// @Produce  json
// @Success 200 {object} dto.BalanceSummaryResponse
// @Router /balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.balanceService.ComputeBalances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSummaryResponse(*summary))
}
