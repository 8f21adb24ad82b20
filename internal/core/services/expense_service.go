package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/core/domain"
	portsrepo "github.com/sunnytraders/inventory_pro_app/internal/core/ports/repositories"
	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
	"github.com/sunnytraders/inventory_pro_app/internal/dto"
	"github.com/sunnytraders/inventory_pro_app/internal/middleware"
)

// expenseService records operating expenses, which stand apart from stock and
// party accounting and only feed the dashboard profit figure.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates the expense recording service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordExpense validates and appends an operating expense. An omitted date
// defaults to now; a malformed date is a validation error.
func (s *expenseService) RecordExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid expense date %q, want YYYY-MM-DD", apperrors.ErrValidation, req.Date)
		}
		date = parsed
	}

	expense, err := domain.NewExpense(date, req.ExpenseType, req.Amount, req.Remarks)
	if err != nil {
		return nil, err
	}

	id, err := s.expenseRepo.SaveExpense(ctx, expense)
	if err != nil {
		logger.Error("Failed to save expense", slog.String("type", expense.ExpenseType), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	expense.ID = id

	logger.Info("Expense recorded", slog.String("type", expense.ExpenseType))
	return &expense, nil
}

// ListExpenses returns all expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpenses removes each id independently; missing ids are skipped.
func (s *expenseService) DeleteExpenses(ctx context.Context, ids []int64) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted := 0
	for _, id := range ids {
		err := s.expenseRepo.DeleteExpense(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return deleted, fmt.Errorf("failed to delete expense %d: %w", id, err)
		}
		deleted++
	}

	logger.Info("Expenses deleted", slog.Int("requested", len(ids)), slog.Int("deleted", deleted))
	return deleted, nil
}
