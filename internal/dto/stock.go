package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

// StockLevelResponse is the API representation of one stock ledger row.
type StockLevelResponse struct {
	Category     string          `json:"category"`
	ItemType     string          `json:"itemType"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// ToStockLevelResponses converts domain ledger rows to their API form.
func ToStockLevelResponses(levels []domain.StockLevel) []StockLevelResponse {
	out := make([]StockLevelResponse, len(levels))
	for i, l := range levels {
		out[i] = StockLevelResponse{
			Category:     l.Category,
			ItemType:     l.ItemType,
			Unit:         l.Unit,
			CurrentStock: l.CurrentStock,
		}
	}
	return out
}

// ListStockResponse wraps the stock ledger listing.
type ListStockResponse struct {
	Stock []StockLevelResponse `json:"stock"`
}

// StockAuditResponse reports the result of a ledger consistency check.
type StockAuditResponse struct {
	Consistent    bool                      `json:"consistent"`
	Discrepancies []domain.StockDiscrepancy `json:"discrepancies"`
}
