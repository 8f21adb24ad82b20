package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// stockHandler handles HTTP requests for the materialized stock ledger.
type stockHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	auditService  portssvc.StockAuditSvcFacade
}

func newStockHandler(ls portssvc.LedgerSvcFacade, as portssvc.StockAuditSvcFacade) *stockHandler {
	return &stockHandler{ledgerService: ls, auditService: as}
}

// registerStockRoutes registers routes for stock queries and the consistency audit.
func registerStockRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, auditService portssvc.StockAuditSvcFacade) {
	h := newStockHandler(ledgerService, auditService)

	stock := rg.Group("/stock")
	{
		stock.GET("", h.listStock)
		stock.GET("/audit", h.auditStock)
	}
}

// listStock godoc
// @Summary List stock levels
// @Description Retrieves materialized stock ledger rows, optionally filtered by category and item type
// @Tags stock
// @Produce  json
// @Param   category query string false "Category name"
// @Param   itemType query string false "Item type name"
// @Success 200 {object} dto.ListStockResponse
// @Router /stock [get]
func (h *stockHandler) listStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	levels, err := h.ledgerService.QueryStock(c.Request.Context(), c.Query("category"), c.Query("itemType"))
	if err != nil {
		logger.Error("Failed to list stock", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stock"})
		return
	}

	c.JSON(http.StatusOK, dto.ListStockResponse{Stock: dto.ToStockLevelResponses(levels)})
}

// auditStock godoc
// @Summary Audit the stock ledger
// @Description Recomputes per-key sums from the transaction log and reports any divergence from the materialized ledger
// @Tags stock
// @Produce  json
// @Success 200 {object} dto.StockAuditResponse
// @Router /stock/audit [get]
func (h *stockHandler) auditStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	discrepancies, err := h.auditService.Audit(c.Request.Context())
	if err != nil {
		logger.Error("Failed to audit stock ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to audit stock ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.StockAuditResponse{
		Consistent:    len(discrepancies) == 0,
		Discrepancies: discrepancies,
	})
}
