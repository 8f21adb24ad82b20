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

// expenseHandler handles HTTP requests for operating expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

// registerExpenseRoutes registers routes for the expense log.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, writeLimiter gin.HandlerFunc) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", writeLimiter, h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.DELETE("", writeLimiter, h.deleteExpenses)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Description Appends an operating expense; date defaults to today when omitted
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for expense creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	expense, err := h.expenseService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(*expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Retrieves operating expenses newest first
// @Tags expenses
// @Produce  json
// @Success 200 {object} dto.ListExpensesResponse
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ListExpensesResponse{Expenses: dto.ToExpenseResponses(expenses)})
}

// deleteExpenses godoc
// @Summary Delete expenses
// @Description Removes each id independently; missing ids are skipped
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   ids body dto.DeleteByIDsRequest true "Expense ids"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /expenses [delete]
func (h *expenseHandler) deleteExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeleteByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for expense deletion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	deleted, err := h.expenseService.DeleteExpenses(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to delete expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}
