package services_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
)

// memoryRepos is an in-memory implementation of every repository facade,
// preserving the storage semantics the services rely on: monotonic ids that
// are never reused, and the log-write + stock-adjust pair applied together.
type memoryRepos struct {
	mu sync.Mutex

	nextTxnID     int64
	nextPaymentID int64
	nextExpenseID int64

	txns     map[int64]domain.Transaction
	stock    map[domain.StockKey]decimal.Decimal
	payments map[int64]domain.Payment
	expenses map[int64]domain.Expense
}

func newMemoryRepos() *memoryRepos {
	return &memoryRepos{
		txns:     make(map[int64]domain.Transaction),
		stock:    make(map[domain.StockKey]decimal.Decimal),
		payments: make(map[int64]domain.Payment),
		expenses: make(map[int64]domain.Expense),
	}
}

var (
	_ portsrepo.TransactionRepositoryFacade = (*memoryRepos)(nil)
	_ portsrepo.StockRepositoryFacade       = (*memoryRepos)(nil)
	_ portsrepo.PaymentRepositoryFacade     = (*memoryRepos)(nil)
	_ portsrepo.ExpenseRepositoryFacade     = (*memoryRepos)(nil)
)

func (m *memoryRepos) SaveTransaction(_ context.Context, txn domain.Transaction) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextTxnID++
	txn.ID = m.nextTxnID
	m.txns[txn.ID] = txn
	key := txn.StockKey()
	m.stock[key] = m.stock[key].Add(txn.Quantity)
	return txn.ID, nil
}

func (m *memoryRepos) DeleteTransaction(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.txns[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	delete(m.txns, id)
	key := txn.StockKey()
	m.stock[key] = m.stock[key].Sub(txn.Quantity)
	return nil
}

func (m *memoryRepos) FindTransactionByID(_ context.Context, id int64) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.txns[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (m *memoryRepos) FindTransactionsByIDs(_ context.Context, ids []int64) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Transaction
	for _, id := range ids {
		if txn, ok := m.txns[id]; ok {
			out = append(out, txn)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memoryRepos) ListTransactions(_ context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Transaction
	for _, txn := range m.txns {
		if filter.PartyName != "" && txn.PartyName != filter.PartyName {
			continue
		}
		if filter.TransactionType != "" && txn.TransactionType != filter.TransactionType {
			continue
		}
		if !filter.Since.IsZero() && txn.Date.Before(filter.Since) {
			continue
		}
		if filter.Search != "" && !matchesSearch(txn, filter.Search) {
			continue
		}
		out = append(out, txn)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memoryRepos) ListStock(_ context.Context, category, itemType string) ([]domain.StockLevel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.StockLevel
	for key, qty := range m.stock {
		if category != "" && key.Category != category {
			continue
		}
		if itemType != "" && key.ItemType != itemType {
			continue
		}
		out = append(out, domain.StockLevel{StockKey: key, CurrentStock: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].StockKey, out[j].StockKey
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.ItemType != b.ItemType {
			return a.ItemType < b.ItemType
		}
		return a.Unit < b.Unit
	})
	return out, nil
}

func (m *memoryRepos) SumLiveQuantities(_ context.Context) (map[domain.StockKey]decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sums := make(map[domain.StockKey]decimal.Decimal)
	for _, txn := range m.txns {
		key := txn.StockKey()
		sums[key] = sums[key].Add(txn.Quantity)
	}
	return sums, nil
}

func (m *memoryRepos) SavePayment(_ context.Context, payment domain.Payment) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextPaymentID++
	payment.ID = m.nextPaymentID
	m.payments[payment.ID] = payment
	return payment.ID, nil
}

func (m *memoryRepos) ListPayments(_ context.Context, partyName string) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Payment
	for _, p := range m.payments {
		if partyName != "" && p.PartyName != partyName {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryRepos) DeletePayment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.payments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.payments, id)
	return nil
}

func (m *memoryRepos) SaveExpense(_ context.Context, expense domain.Expense) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextExpenseID++
	expense.ID = m.nextExpenseID
	m.expenses[expense.ID] = expense
	return expense.ID, nil
}

func (m *memoryRepos) ListExpenses(_ context.Context, since time.Time) ([]domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Expense
	for _, e := range m.expenses {
		if !since.IsZero() && e.Date.Before(since) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryRepos) DeleteExpense(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.expenses[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.expenses, id)
	return nil
}

func sortNewestFirst(txns []domain.Transaction) {
	sort.Slice(txns, func(i, j int) bool { return txns[i].ID > txns[j].ID })
}

func matchesSearch(txn domain.Transaction, needle string) bool {
	needle = strings.ToLower(needle)
	for _, field := range []string{txn.PartyName, txn.ItemType, txn.VehicleName, txn.SiteName, txn.Remarks} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
