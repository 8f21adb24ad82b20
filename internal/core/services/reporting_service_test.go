package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	repos   *memoryRepos
	service portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.repos = newMemoryRepos()
	suite.service = services.NewReportingService(suite.repos, suite.repos)
}

func (suite *ReportingServiceTestSuite) addTxn(txnType domain.TransactionType, cashCredit domain.CashCredit, date time.Time, qty, rate int64) {
	txn, err := domain.NewTransaction(
		date, "Cement", "UltraTech", "bag",
		decimal.NewFromInt(qty), decimal.NewFromInt(rate),
		txnType, cashCredit, "Some Party", "", "", "",
	)
	suite.Require().NoError(err)
	_, err = suite.repos.SaveTransaction(context.Background(), txn)
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) addExpense(date time.Time, amount int64) {
	expense, err := domain.NewExpense(date, "Diesel", decimal.NewFromInt(amount), "")
	suite.Require().NoError(err)
	_, err = suite.repos.SaveExpense(context.Background(), expense)
	suite.Require().NoError(err)
}

func (suite *ReportingServiceTestSuite) TestProfitArithmetic() {
	now := time.Now()
	suite.addTxn(domain.Sale, domain.Cash, now, 40, 400)      // 16000 revenue
	suite.addTxn(domain.Sale, domain.Credit, now, 10, 400)    // 4000 revenue
	suite.addTxn(domain.Purchase, domain.Cash, now, 100, 350) // 35000 procurement
	suite.addExpense(now, 2000)

	summary, err := suite.service.DashboardSummary(context.Background(), "all")
	suite.Require().NoError(err)

	suite.True(summary.TotalSales.Equal(decimal.NewFromInt(20000)))
	suite.True(summary.TotalPurchases.Equal(decimal.NewFromInt(35000)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(2000)))
	suite.True(summary.EstimatedProfit.Equal(decimal.NewFromInt(-17000)), "profit = sales - purchases - expenses")
}

func (suite *ReportingServiceTestSuite) TestSalesSplitByCashCredit() {
	now := time.Now()
	suite.addTxn(domain.Sale, domain.Cash, now, 40, 400)
	suite.addTxn(domain.Sale, domain.Credit, now, 10, 400)

	summary, err := suite.service.DashboardSummary(context.Background(), "all")
	suite.Require().NoError(err)

	suite.True(summary.SalesSplit["cash"].Equal(decimal.NewFromInt(16000)))
	suite.True(summary.SalesSplit["credit"].Equal(decimal.NewFromInt(4000)))
}

func (suite *ReportingServiceTestSuite) TestTimeframeExcludesOldRecords() {
	now := time.Now()
	suite.addTxn(domain.Sale, domain.Cash, now.AddDate(0, 0, -2), 10, 400)  // in range
	suite.addTxn(domain.Sale, domain.Cash, now.AddDate(0, 0, -40), 50, 400) // out of range
	suite.addExpense(now.AddDate(0, 0, -40), 9000)

	summary, err := suite.service.DashboardSummary(context.Background(), "7d")
	suite.Require().NoError(err)

	suite.True(summary.TotalSales.Equal(decimal.NewFromInt(4000)))
	suite.True(summary.TotalExpenses.IsZero())
}

func (suite *ReportingServiceTestSuite) TestDailyRevenueIsSortedAndAggregated() {
	now := time.Now().UTC()
	suite.addTxn(domain.Sale, domain.Cash, now.AddDate(0, 0, -1), 10, 400)
	suite.addTxn(domain.Sale, domain.Cash, now.AddDate(0, 0, -1), 5, 400)
	suite.addTxn(domain.Sale, domain.Cash, now, 1, 400)

	summary, err := suite.service.DashboardSummary(context.Background(), "30d")
	suite.Require().NoError(err)

	suite.Require().Len(summary.DailyRevenue, 2)
	suite.Equal(now.AddDate(0, 0, -1).Format("2006-01-02"), summary.DailyRevenue[0].Date)
	suite.True(summary.DailyRevenue[0].Amount.Equal(decimal.NewFromInt(6000)), "same-day sales are aggregated")
	suite.True(summary.DailyRevenue[1].Amount.Equal(decimal.NewFromInt(400)))
}

func (suite *ReportingServiceTestSuite) TestEmptyRangeDefaultsToAllTime() {
	suite.addTxn(domain.Sale, domain.Cash, time.Now().AddDate(-2, 0, 0), 10, 400)

	summary, err := suite.service.DashboardSummary(context.Background(), "")
	suite.Require().NoError(err)

	suite.Equal("all", summary.Range)
	suite.True(summary.TotalSales.Equal(decimal.NewFromInt(4000)))
}

func (suite *ReportingServiceTestSuite) TestUnknownTimeframeIsValidationError() {
	_, err := suite.service.DashboardSummary(context.Background(), "14d")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
