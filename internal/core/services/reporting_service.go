package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
)

// Supported dashboard timeframes.
const (
	RangeLast7Days  = "7d"
	RangeLast30Days = "30d"
	RangeLast90Days = "90d"
	RangeYearToDate = "ytd"
	RangeAllTime    = "all"
)

// reportingService assembles the financial dashboard from the transaction and
// expense logs.
type reportingService struct {
	txnRepo     portsrepo.TransactionReader
	expenseRepo portsrepo.ExpenseReader
	now         func() time.Time
}

// NewReportingService creates the dashboard reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, expenseRepo portsrepo.ExpenseReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:     txnRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// rangeStart resolves a timeframe name to its inclusive start instant.
func (s *reportingService) rangeStart(timeframe string) (time.Time, error) {
	now := s.now().UTC()
	switch timeframe {
	case RangeLast7Days:
		return now.AddDate(0, 0, -7), nil
	case RangeLast30Days:
		return now.AddDate(0, 0, -30), nil
	case RangeLast90Days:
		return now.AddDate(0, 0, -90), nil
	case RangeYearToDate:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), nil
	case RangeAllTime, "":
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown timeframe %q", apperrors.ErrValidation, timeframe)
	}
}

// DashboardSummary computes revenue, procurement, expense and profit totals
// for the timeframe, plus the daily revenue trend and the cash/credit sales
// split.
func (s *reportingService) DashboardSummary(ctx context.Context, timeframe string) (*dto.DashboardSummaryResponse, error) {
	if timeframe == "" {
		timeframe = RangeAllTime
	}
	since, err := s.rangeStart(timeframe)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{Since: since})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for dashboard: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for dashboard: %w", err)
	}

	summary := &dto.DashboardSummaryResponse{
		Range:          timeframe,
		TotalSales:     decimal.Zero,
		TotalPurchases: decimal.Zero,
		TotalExpenses:  decimal.Zero,
		SalesSplit:     map[string]decimal.Decimal{},
	}

	dailyRevenue := map[string]decimal.Decimal{}
	for _, txn := range txns {
		switch txn.TransactionType {
		case domain.Sale:
			summary.TotalSales = summary.TotalSales.Add(txn.Amount)
			day := txn.Date.Format("2006-01-02")
			dailyRevenue[day] = dailyRevenue[day].Add(txn.Amount)
			mode := string(txn.CashCredit)
			summary.SalesSplit[mode] = summary.SalesSplit[mode].Add(txn.Amount)
		case domain.Purchase:
			summary.TotalPurchases = summary.TotalPurchases.Add(txn.Amount)
		}
	}
	for _, expense := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(expense.Amount)
	}

	summary.EstimatedProfit = summary.TotalSales.Sub(summary.TotalPurchases).Sub(summary.TotalExpenses)

	days := make([]string, 0, len(dailyRevenue))
	for day := range dailyRevenue {
		days = append(days, day)
	}
	sort.Strings(days)
	summary.DailyRevenue = make([]dto.DailyAmount, len(days))
	for i, day := range days {
		summary.DailyRevenue[i] = dto.DailyAmount{Date: day, Amount: dailyRevenue[day]}
	}

	return summary, nil
}
