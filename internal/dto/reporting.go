package dto

import "github.com/shopspring/decimal"

// DailyAmount is one point of the daily revenue trend.
type DailyAmount struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DashboardSummaryResponse carries the gated financial dashboard metrics for
// one timeframe.
type DashboardSummaryResponse struct {
	Range           string                     `json:"range"`
	TotalSales      decimal.Decimal            `json:"totalSales"`
	TotalPurchases  decimal.Decimal            `json:"totalPurchases"`
	TotalExpenses   decimal.Decimal            `json:"totalExpenses"`
	EstimatedProfit decimal.Decimal            `json:"estimatedProfit"`
	DailyRevenue    []DailyAmount              `json:"dailyRevenue"`
	SalesSplit      map[string]decimal.Decimal `json:"salesSplit"`
}
