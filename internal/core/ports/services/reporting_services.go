package services

import (
	"context"

	"github.com/sunnytraders/inventory_pro_app/internal/dto"
)

// ReportingSvcFacade assembles the financial dashboard view.
type ReportingSvcFacade interface {
	// DashboardSummary computes sales, purchase, expense and profit totals
	// plus trend data for the given timeframe (7d, 30d, 90d, ytd, all).
	DashboardSummary(ctx context.Context, timeframe string) (*dto.DashboardSummaryResponse, error)
}

// BillingSvcFacade assembles printable bills from logged transactions.
type BillingSvcFacade interface {
	// BuildBill selects transactions by party/site/date or by a manual id
	// list and formats them with absolute quantities and amounts.
	BuildBill(ctx context.Context, req dto.BuildBillRequest) (*dto.BillResponse, error)
}
