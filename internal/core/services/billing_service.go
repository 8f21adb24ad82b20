package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/utils"
)

// billingService assembles printable bills from logged transactions.
type billingService struct {
	txnRepo portsrepo.TransactionReader
	now     func() time.Time
}

// NewBillingService creates the bill building service.
func NewBillingService(txnRepo portsrepo.TransactionReader) portssvc.BillingSvcFacade {
	return &billingService{
		txnRepo: txnRepo,
		now:     time.Now,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// BuildBill selects transactions either by a manual id list (non-numeric
// tokens dropped, missing ids skipped) or by party with optional site and
// date-range narrowing, and formats them for billing display with absolute
// quantities and amounts.
func (s *billingService) BuildBill(ctx context.Context, req dto.BuildBillRequest) (*dto.BillResponse, error) {
	var txns []domain.Transaction
	var err error

	if req.IDs != "" {
		ids := utils.ParseIDList(req.IDs)
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w: no valid transaction ids in %q", apperrors.ErrValidation, req.IDs)
		}
		txns, err = s.txnRepo.FindTransactionsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions for bill: %w", err)
		}
	} else {
		if req.PartyName == "" {
			return nil, fmt.Errorf("%w: party name is required when no id list is given", apperrors.ErrValidation)
		}
		txns, err = s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{PartyName: req.PartyName})
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions for bill: %w", err)
		}
		txns, err = s.applyDateAndSite(txns, req)
		if err != nil {
			return nil, err
		}
	}

	if len(txns) == 0 {
		return nil, fmt.Errorf("%w: no transactions match the bill selection", apperrors.ErrNotFound)
	}

	bill := &dto.BillResponse{
		PartyName:   txns[0].PartyName,
		GeneratedAt: s.now().UTC().Truncate(time.Minute),
		Lines:       make([]dto.BillLineResponse, len(txns)),
		TotalAmount: decimal.Zero,
	}
	for i, txn := range txns {
		amount := txn.Amount.Abs()
		bill.Lines[i] = dto.BillLineResponse{
			Date:     txn.Date,
			ItemType: txn.ItemType,
			Quantity: txn.Quantity.Abs(),
			Unit:     txn.Unit,
			Rate:     txn.Rate,
			Amount:   amount,
		}
		bill.TotalAmount = bill.TotalAmount.Add(amount)
	}
	return bill, nil
}

func (s *billingService) applyDateAndSite(txns []domain.Transaction, req dto.BuildBillRequest) ([]domain.Transaction, error) {
	var from, to time.Time
	var err error
	if req.From != "" {
		from, err = time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid from date %q, want YYYY-MM-DD", apperrors.ErrValidation, req.From)
		}
	}
	if req.To != "" {
		to, err = time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid to date %q, want YYYY-MM-DD", apperrors.ErrValidation, req.To)
		}
		// Inclusive end of day.
		to = to.AddDate(0, 0, 1)
	}

	filtered := txns[:0]
	for _, txn := range txns {
		if req.SiteName != "" && txn.SiteName != req.SiteName {
			continue
		}
		if !from.IsZero() && txn.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !txn.Date.Before(to) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered, nil
}
