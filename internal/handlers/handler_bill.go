package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// billHandler handles HTTP requests for printable bill assembly.
type billHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillHandler(bs portssvc.BillingSvcFacade) *billHandler {
	return &billHandler{billingService: bs}
}

// registerBillRoutes registers the bill building route.
func registerBillRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillHandler(billingService)
	rg.POST("/bills", h.buildBill)
}

// buildBill godoc
// @Summary Build a printable bill
// @Description Selects transactions by party/site/date range or by a manual id list and formats them for printing
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   selection body dto.BuildBillRequest true "Bill selection"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 404 {object} map[string]string "No matching transactions"
// @Router /bills [post]
func (h *billHandler) buildBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BuildBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bill building", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	bill, err := h.billingService.BuildBill(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No transactions match the bill selection"})
		default:
			logger.Error("Failed to build bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build bill"})
		}
		return
	}

	c.JSON(http.StatusOK, bill)
}
