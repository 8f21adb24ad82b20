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

// paymentHandler handles HTTP requests for settlement payments.
type paymentHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newPaymentHandler(ss portssvc.SettlementSvcFacade) *paymentHandler {
	return &paymentHandler{settlementService: ss}
}

// registerPaymentRoutes registers routes for the payment log.
func registerPaymentRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade, writeLimiter gin.HandlerFunc) {
	h := newPaymentHandler(settlementService)

	payments := rg.Group("/payments")
	{
		payments.POST("", writeLimiter, h.createPayment)
		payments.GET("", h.listPayments)
		payments.DELETE("", writeLimiter, h.deletePayments)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Appends a settlement payment against a party's running balance
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for payment creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	payment, err := h.settlementService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(*payment))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves payments newest first, optionally for one party
// @Tags payments
// @Produce  json
// @Param   party query string false "Exact party name"
// @Success 200 {object} dto.ListPaymentsResponse
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.settlementService.ListPayments(c.Request.Context(), c.Query("party"))
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToPaymentResponses(payments)})
}

// deletePayments godoc
// @Summary Delete payments
// @Description Removes each id independently; missing ids are skipped
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   ids body dto.DeleteByIDsRequest true "Payment ids"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /payments [delete]
func (h *paymentHandler) deletePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeleteByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for payment deletion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	deleted, err := h.settlementService.DeletePayments(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to delete payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payments"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
