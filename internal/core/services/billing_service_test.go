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
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
)

type BillingServiceTestSuite struct {
	suite.Suite
	repos   *memoryRepos
	service portssvc.BillingSvcFacade
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.repos = newMemoryRepos()
	suite.service = services.NewBillingService(suite.repos)
}

func (suite *BillingServiceTestSuite) addSale(party, site string, date time.Time, qty, rate int64) int64 {
	txn, err := domain.NewTransaction(
		date, "Cement", "UltraTech", "bag",
		decimal.NewFromInt(qty), decimal.NewFromInt(rate),
		domain.Sale, domain.Credit, party, "", site, "",
	)
	suite.Require().NoError(err)
	id, err := suite.repos.SaveTransaction(context.Background(), txn)
	suite.Require().NoError(err)
	return id
}

func (suite *BillingServiceTestSuite) TestBillByPartyUsesAbsoluteValues() {
	suite.addSale("Patil Constructions", "Baner Site", time.Now(), 40, 400)

	bill, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{PartyName: "Patil Constructions"})
	suite.Require().NoError(err)

	suite.Equal("Patil Constructions", bill.PartyName)
	suite.Require().Len(bill.Lines, 1)
	suite.True(bill.Lines[0].Quantity.Equal(decimal.NewFromInt(40)), "sale quantity is shown unsigned")
	suite.True(bill.Lines[0].Amount.Equal(decimal.NewFromInt(16000)))
	suite.True(bill.TotalAmount.Equal(decimal.NewFromInt(16000)))
}

func (suite *BillingServiceTestSuite) TestBillNarrowedBySiteAndDateRange() {
	now := time.Now()
	suite.addSale("Patil Constructions", "Baner Site", now.AddDate(0, 0, -20), 10, 400)
	inRange := suite.addSale("Patil Constructions", "Baner Site", now.AddDate(0, 0, -5), 20, 400)
	suite.addSale("Patil Constructions", "Wakad Site", now.AddDate(0, 0, -5), 30, 400)

	bill, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{
		PartyName: "Patil Constructions",
		SiteName:  "Baner Site",
		From:      now.AddDate(0, 0, -10).Format("2006-01-02"),
		To:        now.Format("2006-01-02"),
	})
	suite.Require().NoError(err)

	suite.Require().Len(bill.Lines, 1)
	suite.True(bill.Lines[0].Quantity.Equal(decimal.NewFromInt(20)), "only the in-range Baner line %d survives", inRange)
}

func (suite *BillingServiceTestSuite) TestBillFromManualIDListDropsJunkTokens() {
	first := suite.addSale("Patil Constructions", "", time.Now(), 10, 400)
	second := suite.addSale("Patil Constructions", "", time.Now(), 20, 400)

	bill, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{
		IDs: " 1, banana, 2, 9999 ",
	})
	suite.Require().NoError(err)

	suite.Len(bill.Lines, 2, "junk tokens and missing ids are skipped, got ids %d %d", first, second)
	suite.True(bill.TotalAmount.Equal(decimal.NewFromInt(12000)))
}

func (suite *BillingServiceTestSuite) TestBillWithOnlyJunkTokensIsValidationError() {
	_, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{IDs: "banana, -3"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillingServiceTestSuite) TestBillWithNoSelectionIsValidationError() {
	_, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillingServiceTestSuite) TestBillWithNoMatchesIsNotFound() {
	_, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{PartyName: "Nobody"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BillingServiceTestSuite) TestMalformedDateIsValidationError() {
	suite.addSale("Patil Constructions", "", time.Now(), 10, 400)

	_, err := suite.service.BuildBill(context.Background(), dto.BuildBillRequest{
		PartyName: "Patil Constructions",
		From:      "12-01-2026",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
