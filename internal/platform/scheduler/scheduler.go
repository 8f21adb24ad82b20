// Package scheduler runs the nightly ledger consistency check on a cron
// schedule so divergence is caught even when nobody opens the audit endpoint.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	portssvc "github.com/sunnytraders/inventory_pro_app/internal/core/ports/services"
)

// StockAuditScheduler periodically verifies the stock ledger against the
// transaction log.
type StockAuditScheduler struct {
	cron         *cron.Cron
	auditService portssvc.StockAuditSvcFacade
	logger       *slog.Logger
}

// NewStockAuditScheduler creates a scheduler for the given cron spec
// (standard 5-field format).
func NewStockAuditScheduler(spec string, auditService portssvc.StockAuditSvcFacade, logger *slog.Logger) (*StockAuditScheduler, error) {
	s := &StockAuditScheduler{
		cron:         cron.New(),
		auditService: auditService,
		logger:       logger,
	}

	_, err := s.cron.AddFunc(spec, s.runAudit)
	if err != nil {
		return nil, fmt.Errorf("invalid stock audit schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins running scheduled audits in the background.
func (s *StockAuditScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Stock audit scheduler started")
}

// Stop cancels future runs and waits for an in-flight run to finish.
func (s *StockAuditScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Stock audit scheduler stopped")
}

func (s *StockAuditScheduler) runAudit() {
	discrepancies, err := s.auditService.Audit(context.Background())
	if err != nil {
		s.logger.Error("Scheduled stock audit failed", slog.String("error", err.Error()))
		return
	}
	if len(discrepancies) > 0 {
		s.logger.Error("Scheduled stock audit found discrepancies", slog.Int("keys", len(discrepancies)))
		return
	}
	s.logger.Info("Scheduled stock audit passed")
}
