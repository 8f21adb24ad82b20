package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
)

// balanceService derives outstanding party balances from the credit
// transactions and the payment log. The derivation is recomputed on every
// call; the logs are small and a stale cache is a worse failure mode than the
// recomputation cost.
type balanceService struct {
	txnRepo     portsrepo.TransactionReader
	paymentRepo portsrepo.PaymentReader
}

// NewBalanceService creates the balance calculator.
func NewBalanceService(txnRepo portsrepo.TransactionReader, paymentRepo portsrepo.PaymentReader) portssvc.BalanceSvcFacade {
	return &balanceService{
		txnRepo:     txnRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// ComputeBalances groups credit transactions and payments by party and nets
// them. Per party: net receivable = credit sales - inward payments, net
// payable = credit purchases - outward payments, both clamped at zero for
// reporting. Parties below the outstanding epsilon are omitted.
func (s *balanceService) ComputeBalances(ctx context.Context) (*domain.BalanceSummary, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for balance computation: %w", err)
	}
	payments, err := s.paymentRepo.ListPayments(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for balance computation: %w", err)
	}

	type position struct {
		creditSales     decimal.Decimal
		creditPurchases decimal.Decimal
		inward          decimal.Decimal
		outward         decimal.Decimal
	}
	positions := make(map[string]*position)
	at := func(party string) *position {
		p, ok := positions[party]
		if !ok {
			p = &position{}
			positions[party] = p
		}
		return p
	}

	for _, txn := range txns {
		if txn.CashCredit != domain.Credit {
			continue
		}
		p := at(txn.PartyName)
		switch txn.TransactionType {
		case domain.Sale:
			p.creditSales = p.creditSales.Add(txn.Amount)
		case domain.Purchase:
			p.creditPurchases = p.creditPurchases.Add(txn.Amount)
		}
	}
	for _, pay := range payments {
		p := at(pay.PartyName)
		switch pay.PaymentType {
		case domain.Inward:
			p.inward = p.inward.Add(pay.Amount)
		case domain.Outward:
			p.outward = p.outward.Add(pay.Amount)
		}
	}

	summary := &domain.BalanceSummary{
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
	}
	for party, p := range positions {
		balance := domain.PartyBalance{
			PartyName:     party,
			NetReceivable: clampZero(p.creditSales.Sub(p.inward)),
			NetPayable:    clampZero(p.creditPurchases.Sub(p.outward)),
		}
		if !balance.Outstanding() {
			continue
		}
		summary.Parties = append(summary.Parties, balance)
		summary.TotalReceivable = summary.TotalReceivable.Add(balance.NetReceivable)
		summary.TotalPayable = summary.TotalPayable.Add(balance.NetPayable)
	}

	sort.Slice(summary.Parties, func(i, j int) bool {
		return summary.Parties[i].PartyName < summary.Parties[j].PartyName
	})
	summary.NetMarketBalance = summary.TotalReceivable.Sub(summary.TotalPayable)
	return summary, nil
}

// clampZero discards a negative net: overpayment is not carried forward as a
// credit owed back to the party.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
