package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
)

func newTxn(t *testing.T, txnType domain.TransactionType, qty, rate int64) domain.Transaction {
	t.Helper()
	txn, err := domain.NewTransaction(
		time.Now(), "Cement", "UltraTech", "bag",
		decimal.NewFromInt(qty), decimal.NewFromInt(rate),
		txnType, domain.Cash, "Some Party", "", "", "",
	)
	require.NoError(t, err)
	return txn
}

func TestNewTransactionSignConvention(t *testing.T) {
	purchase := newTxn(t, domain.Purchase, 100, 350)
	assert.True(t, purchase.Quantity.Equal(decimal.NewFromInt(100)))

	sale := newTxn(t, domain.Sale, 40, 400)
	assert.True(t, sale.Quantity.Equal(decimal.NewFromInt(-40)))
}

func TestNewTransactionAmountIsUnsigned(t *testing.T) {
	sale := newTxn(t, domain.Sale, 40, 400)
	assert.True(t, sale.Amount.Equal(decimal.NewFromInt(16000)), "amount is |qty| x rate even for sales")
}

func TestNewTransactionTruncatesDateToMinute(t *testing.T) {
	txn := newTxn(t, domain.Sale, 1, 1)
	assert.Zero(t, txn.Date.Second())
	assert.Zero(t, txn.Date.Nanosecond())
	assert.Equal(t, time.UTC, txn.Date.Location())
}

func TestNewTransactionValidation(t *testing.T) {
	now := time.Now()
	qty := decimal.NewFromInt(10)
	rate := decimal.NewFromInt(100)

	_, err := domain.NewTransaction(now, "Cement", "UltraTech", "bag", qty, rate, domain.Sale, domain.Cash, "", "", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "party is required")

	_, err = domain.NewTransaction(now, "Cement", "UltraTech", "bag", decimal.Zero, rate, domain.Sale, domain.Cash, "P", "", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "quantity must be positive")

	_, err = domain.NewTransaction(now, "Cement", "UltraTech", "bag", qty, decimal.NewFromInt(-1), domain.Sale, domain.Cash, "P", "", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "rate must not be negative")

	_, err = domain.NewTransaction(now, "Cement", "UltraTech", "bag", qty, rate, "loan", domain.Cash, "P", "", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "unknown transaction type")

	_, err = domain.NewTransaction(now, "Cement", "UltraTech", "bag", qty, rate, domain.Sale, "cheque", "P", "", "", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "unknown cash/credit mode")
}

func TestZeroRateGiftLoadIsValid(t *testing.T) {
	txn := newTxn(t, domain.Sale, 5, 0)
	assert.True(t, txn.Amount.IsZero())
}

func TestStockKey(t *testing.T) {
	txn := newTxn(t, domain.Sale, 1, 1)
	assert.Equal(t, domain.StockKey{Category: "Cement", ItemType: "UltraTech", Unit: "bag"}, txn.StockKey())
}
