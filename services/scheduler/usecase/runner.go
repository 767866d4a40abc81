package usecase

import (
	"context"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	nrpkg "github.com/piresc/arcpay/internal/pkg/newrelic"
	"github.com/piresc/arcpay/services/scheduler"
)

const defaultInterval = time.Minute

// Runner drives the scheduler on a fixed interval
type Runner struct {
	uc       scheduler.SchedulerUC
	interval time.Duration
	nrApp    *newrelic.Application
}

// NewRunner creates a runner ticking at cfg.Scheduler.Interval. nrApp may be nil.
func NewRunner(cfg *models.Config, uc scheduler.SchedulerUC, nrApp *newrelic.Application) *Runner {
	interval := cfg.Scheduler.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{uc: uc, interval: interval, nrApp: nrApp}
}

// Start blocks, ticking until ctx is cancelled
func (r *Runner) Start(ctx context.Context) {
	logger.Info("Scheduler runner started", logger.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Scheduler runner stopped")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single tick inside a background transaction
func (r *Runner) RunOnce(ctx context.Context) []models.TickResult {
	txnCtx, end := nrpkg.StartBackgroundTransaction(ctx, r.nrApp, "scheduler.tick")
	results, err := r.uc.Tick(txnCtx)
	end(err)
	if err != nil {
		logger.Error("Scheduler tick failed", logger.Err(err))
		return results
	}
	for _, res := range results {
		logger.Info("Payment processed",
			logger.String("payment_id", res.PaymentID),
			logger.Bool("success", res.Result.Success),
			logger.String("status", res.Result.Status))
	}
	return results
}
