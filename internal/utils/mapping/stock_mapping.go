package mapping

import (
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	"github.com/sunnytraders/inventory_pro_app/internal/models"
)

// ToDomainStockLevel converts a stock_summary row to the domain representation.
func ToDomainStockLevel(m models.StockSummary) domain.StockLevel {
	return domain.StockLevel{
		StockKey: domain.StockKey{
			Category: m.Category,
			ItemType: m.ItemType,
			Unit:     m.Unit,
		},
		CurrentStock: m.CurrentStock,
	}
}

// ToDomainStockLevelSlice converts a slice of stock_summary rows.
func ToDomainStockLevelSlice(ms []models.StockSummary) []domain.StockLevel {
	out := make([]domain.StockLevel, len(ms))
	for i, m := range ms {
		out[i] = ToDomainStockLevel(m)
	}
	return out
}
