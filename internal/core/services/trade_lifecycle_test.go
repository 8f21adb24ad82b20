package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/core/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
)

// TradeLifecycleTestSuite runs the ledger, settlement and balance services
// against one shared store, following a stock purchase through a credit sale,
// a part payment and a correction delete.
type TradeLifecycleTestSuite struct {
	suite.Suite
	repos      *memoryRepos
	ledger     portssvc.LedgerSvcFacade
	settlement portssvc.SettlementSvcFacade
	balances   portssvc.BalanceSvcFacade
}

func (suite *TradeLifecycleTestSuite) SetupTest() {
	suite.repos = newMemoryRepos()
	suite.ledger = services.NewLedgerService(suite.repos, suite.repos, catalog.Default())
	suite.settlement = services.NewSettlementService(suite.repos)
	suite.balances = services.NewBalanceService(suite.repos, suite.repos)
}

func (suite *TradeLifecycleTestSuite) cementStock() decimal.Decimal {
	levels, err := suite.ledger.QueryStock(context.Background(), "Cement", "UltraTech")
	suite.Require().NoError(err)
	for _, l := range levels {
		if l.Unit == "bag" {
			return l.CurrentStock
		}
	}
	return decimal.Zero
}

func (suite *TradeLifecycleTestSuite) receivableOf(party string) decimal.Decimal {
	summary, err := suite.balances.ComputeBalances(context.Background())
	suite.Require().NoError(err)
	for _, b := range summary.Parties {
		if b.PartyName == party {
			return b.NetReceivable
		}
	}
	return decimal.Zero
}

func (suite *TradeLifecycleTestSuite) TestPurchaseSalePaymentAndCorrection() {
	ctx := context.Background()

	// Stock arrives: 100 bags at 300, paid cash.
	_, err := suite.ledger.InsertTransactions(ctx, dto.CreateBillRequest{
		PartyName: "Shree Suppliers",
		Lines:     []dto.BillLineRequest{line("purchase", "cash", 100, 300)},
	})
	suite.Require().NoError(err)
	suite.True(suite.cementStock().Equal(decimal.NewFromInt(100)))

	// 40 bags sold on credit at 350.
	saleIDs, err := suite.ledger.InsertTransactions(ctx, dto.CreateBillRequest{
		PartyName: "ABC Traders",
		Lines:     []dto.BillLineRequest{line("sale", "credit", 40, 350)},
	})
	suite.Require().NoError(err)
	suite.Require().Len(saleIDs, 1)
	suite.True(suite.cementStock().Equal(decimal.NewFromInt(60)))
	suite.True(suite.receivableOf("ABC Traders").Equal(decimal.NewFromInt(14000)))

	// Part payment received against the sale.
	_, err = suite.settlement.RecordPayment(ctx, dto.CreatePaymentRequest{
		PartyName:   "ABC Traders",
		PaymentType: string(domain.Inward),
		Amount:      decimal.NewFromInt(5000),
	})
	suite.Require().NoError(err)
	suite.True(suite.receivableOf("ABC Traders").Equal(decimal.NewFromInt(9000)))

	// The sale turns out to be a mistake. Deleting it restores the stock and
	// settles the party: the orphaned 5000 payment clamps to zero rather than
	// reporting a refund owed.
	deleted, err := suite.ledger.DeleteTransactions(ctx, []int64{saleIDs[0], 9999})
	suite.Require().NoError(err)
	suite.Equal(1, deleted)
	suite.True(suite.cementStock().Equal(decimal.NewFromInt(100)))
	suite.True(suite.receivableOf("ABC Traders").IsZero())
}

func TestTradeLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(TradeLifecycleTestSuite))
}
