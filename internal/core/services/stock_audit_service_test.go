package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/core/services"
)

type StockAuditServiceTestSuite struct {
	suite.Suite
	repos   *memoryRepos
	service portssvc.StockAuditSvcFacade
}

func (suite *StockAuditServiceTestSuite) SetupTest() {
	suite.repos = newMemoryRepos()
	suite.service = services.NewStockAuditService(suite.repos)
}

func (suite *StockAuditServiceTestSuite) addTxn(txnType domain.TransactionType, qty int64) {
	txn, err := domain.NewTransaction(
		time.Now(), "Cement", "UltraTech", "bag",
		decimal.NewFromInt(qty), decimal.NewFromInt(350),
		txnType, domain.Cash, "Some Party", "", "", "",
	)
	suite.Require().NoError(err)
	_, err = suite.repos.SaveTransaction(context.Background(), txn)
	suite.Require().NoError(err)
}

func (suite *StockAuditServiceTestSuite) TestConsistentLedgerReportsNothing() {
	suite.addTxn(domain.Purchase, 100)
	suite.addTxn(domain.Sale, 40)

	discrepancies, err := suite.service.Audit(context.Background())
	suite.Require().NoError(err)
	suite.Empty(discrepancies)
}

func (suite *StockAuditServiceTestSuite) TestTamperedSummaryIsReported() {
	suite.addTxn(domain.Purchase, 100)

	// Corrupt the materialized row behind the log's back.
	key := domain.StockKey{Category: "Cement", ItemType: "UltraTech", Unit: "bag"}
	suite.repos.stock[key] = decimal.NewFromInt(90)

	discrepancies, err := suite.service.Audit(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(discrepancies, 1)
	suite.Equal(key, discrepancies[0].StockKey)
	suite.True(discrepancies[0].Materialized.Equal(decimal.NewFromInt(90)))
	suite.True(discrepancies[0].Recomputed.Equal(decimal.NewFromInt(100)))
}

func (suite *StockAuditServiceTestSuite) TestEmptyLedgerIsConsistent() {
	discrepancies, err := suite.service.Audit(context.Background())
	suite.Require().NoError(err)
	suite.Empty(discrepancies)
}

func TestStockAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockAuditServiceTestSuite))
}
