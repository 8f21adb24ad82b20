package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// dashboardHandler handles HTTP requests for the gated financial dashboard.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the dashboard routes behind the passphrase gate.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, passphraseHash string) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard", middleware.DashboardGate(passphraseHash))
	dashboard.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get the dashboard summary
// @Description Computes sales, purchase, expense and profit totals plus trend data for a timeframe
// @Tags dashboard
// @Produce  json
// @Param   range query string false "Timeframe: 7d, 30d, 90d, ytd or all" default(all)
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} map[string]string "Unknown timeframe"
// @Failure 401 {object} map[string]string "Missing or incorrect passphrase"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), c.Query("range"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
