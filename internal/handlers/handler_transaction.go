package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// transactionHandler handles HTTP requests for the transaction log.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes for the transaction log.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, writeLimiter gin.HandlerFunc) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", writeLimiter, h.createTransactions)
		transactions.GET("", h.listTransactions)
		transactions.DELETE("", writeLimiter, h.deleteTransactions)
	}
}

// createTransactions godoc
// @Summary Record a bill
// @Description Validates and appends every line of a bill as transactions, adjusting stock atomically per line
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.CreateBillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /transactions [post]
func (h *transactionHandler) createTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for bill creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	ids, err := h.ledgerService.InsertTransactions(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording bill", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record bill"})
		}
		return
	}

	logger.Info("Bill recorded", slog.String("party", req.PartyName), slog.Int("lines", len(ids)))
	c.JSON(http.StatusCreated, dto.CreateBillResponse{TransactionIDs: ids})
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves transactions newest first, optionally filtered by party, type or free-text search
// @Tags transactions
// @Produce  json
// @Param   party query string false "Exact party name"
// @Param   type query string false "sale or purchase"
// @Param   search query string false "Free-text search over party, item, vehicle, site and remarks"
// @Param   since query string false "Only transactions on or after this date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter := domain.TransactionFilter{
		PartyName:       c.Query("party"),
		TransactionType: domain.TransactionType(c.Query("type")),
		Search:          c.Query("search"),
	}
	if since := c.Query("since"); since != "" {
		t, err := time.Parse("2006-01-02", since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be formatted as YYYY-MM-DD"})
			return
		}
		filter.Since = t.UTC()
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponses(txns)})
}

// deleteTransactions godoc
// @Summary Delete transactions
// @Description Removes each id independently, reversing its stock contribution; missing ids are skipped
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   ids body dto.DeleteByIDsRequest true "Transaction ids"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /transactions [delete]
func (h *transactionHandler) deleteTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeleteByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transaction deletion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	deleted, err := h.ledgerService.DeleteTransactions(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to delete transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
