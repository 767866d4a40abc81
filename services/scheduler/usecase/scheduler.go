package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/pkg/retry"
	"github.com/piresc/arcpay/internal/pkg/schedule"
	"github.com/piresc/arcpay/services/balance"
	"github.com/piresc/arcpay/services/payment"
	"github.com/piresc/arcpay/services/scheduler"
)

const defaultLeaseTTL = 2 * time.Minute

type schedulerUC struct {
	cfg      *models.Config
	payments payment.PaymentRepo
	users    payment.UserRepo
	balances balance.BalanceUC
	engine   scheduler.ExecutionEngine
	locker   scheduler.Locker
	notifier payment.Notifier
	events   payment.EventPublisher

	// mu serializes ticks within the process; locker covers other processes
	mu  sync.Mutex
	now func() time.Time
}

// NewSchedulerUC creates the payment scheduler. events may be nil.
func NewSchedulerUC(
	cfg *models.Config,
	payments payment.PaymentRepo,
	users payment.UserRepo,
	balances balance.BalanceUC,
	engine scheduler.ExecutionEngine,
	locker scheduler.Locker,
	notifier payment.Notifier,
	events payment.EventPublisher,
) scheduler.SchedulerUC {
	return &schedulerUC{
		cfg:      cfg,
		payments: payments,
		users:    users,
		balances: balances,
		engine:   engine,
		locker:   locker,
		notifier: notifier,
		events:   events,
		now:      time.Now,
	}
}

// Tick processes every due payment once and reports what happened to each
func (uc *schedulerUC) Tick(ctx context.Context) ([]models.TickResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now().UTC()
	all, err := uc.payments.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	due := uc.selectDue(all, now)
	results := make([]models.TickResult, 0, len(due))
	for _, p := range due {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, processed := uc.process(ctx, p, now)
		if processed {
			results = append(results, models.TickResult{PaymentID: p.PaymentID, Result: result})
		}
	}

	if len(due) > 0 {
		logger.InfoCtx(ctx, "Scheduler tick finished",
			logger.Int("due", len(due)),
			logger.Int("processed", len(results)))
	}
	return results, nil
}

// selectDue filters payments ready to run and orders them by timestamp, unscheduled first
func (uc *schedulerUC) selectDue(all []*models.Payment, now time.Time) []*models.Payment {
	var due []*models.Payment
	for _, p := range all {
		if uc.isDue(p, now) {
			due = append(due, p)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].ScheduledTimestamp, due[j].ScheduledTimestamp
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})
	return due
}

func (uc *schedulerUC) isDue(p *models.Payment, now time.Time) bool {
	switch p.Status {
	case models.PaymentStatusApproved, models.PaymentStatusScheduled:
	case models.PaymentStatusFailed:
		if !p.Retryable {
			return false
		}
	default:
		return false
	}

	if p.ScheduledTimestamp == nil {
		return true
	}
	at := *p.ScheduledTimestamp
	if p.Status == models.PaymentStatusFailed && uc.cfg.Scheduler.RetryBackoff && p.Attempts > 0 {
		at = at.Add(retry.Backoff(retry.Config{
			BaseDelay: uc.cfg.Scheduler.BackoffBase,
			MaxDelay:  uc.cfg.Scheduler.BackoffMax,
		}, p.Attempts-1))
	}
	return !at.After(now)
}

// process runs one payment. processed is false when the payment was left for a later tick.
func (uc *schedulerUC) process(ctx context.Context, p *models.Payment, now time.Time) (result models.ExecutionResult, processed bool) {
	claimed, err := uc.locker.Claim(ctx, p.PaymentID, uc.leaseTTL())
	if err != nil {
		logger.WarnCtx(ctx, "Failed to claim payment", logger.String("payment_id", p.PaymentID), logger.Err(err))
		return result, false
	}
	if !claimed {
		logger.InfoCtx(ctx, "Payment claimed by another worker", logger.String("payment_id", p.PaymentID))
		return result, false
	}
	defer func() {
		if err := uc.locker.Release(ctx, p.PaymentID); err != nil {
			logger.WarnCtx(ctx, "Failed to release payment lease", logger.String("payment_id", p.PaymentID), logger.Err(err))
		}
	}()

	user, err := uc.users.GetUser(ctx, p.UserID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load payment owner", logger.String("payment_id", p.PaymentID), logger.Err(err))
		return result, false
	}
	if user == nil {
		uc.fail(ctx, p, models.FailureUserMissing, false, p.Attempts)
		return models.ExecutionResult{Status: models.ExecutionStatusFailed, Error: models.FailureUserMissing}, true
	}

	if !uc.balances.EnsureSufficient(ctx, user, p.Amount) {
		uc.fail(ctx, p, models.FailureInsufficientFunds, true, p.Attempts)
		return models.ExecutionResult{Status: models.ExecutionStatusSkipped, Error: models.FailureInsufficientFunds}, true
	}

	result = uc.engine.Execute(ctx, p)
	if result.Success {
		uc.succeed(ctx, p, user, result, now)
		return result, true
	}

	attempts := p.Attempts + 1
	maxAttempts := uc.cfg.Scheduler.MaxAttempts
	retryable := uc.cfg.Scheduler.HotRetry && (maxAttempts == 0 || attempts < maxAttempts)
	if updated := uc.fail(ctx, p, result.Error, retryable, attempts); updated != nil {
		message := fmt.Sprintf("Payment %s failed: %s", p.PaymentID, result.Error)
		if err := uc.notifier.NotifyUser(ctx, user, message, ""); err != nil {
			logger.WarnCtx(ctx, "Failed to notify user", logger.String("payment_id", p.PaymentID), logger.Err(err))
		}
	}
	return result, true
}

func (uc *schedulerUC) succeed(ctx context.Context, p *models.Payment, user *models.User, result models.ExecutionResult, now time.Time) {
	txID := result.TransactionID
	attempts := 0
	update := models.PaymentUpdate{
		TransactionID:  &txID,
		LastExecutedAt: &now,
		Attempts:       &attempts,
	}

	status := models.PaymentStatusExecuted
	if schedule.IsRecurring(p.Conditions) {
		prev := now
		if p.ScheduledTimestamp != nil {
			prev = *p.ScheduledTimestamp
		}
		if next, ok := schedule.NextRunAfter(p.Conditions, prev, now); ok {
			status = models.PaymentStatusScheduled
			update.ScheduledTimestamp = &next
		} else {
			logger.ErrorCtx(ctx, "Failed to compute next run, marking executed",
				logger.String("payment_id", p.PaymentID),
				logger.Any("conditions", p.Conditions))
		}
	}

	updated, err := uc.payments.UpdateStatus(ctx, p.PaymentID, status, update)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to record execution",
			logger.String("payment_id", p.PaymentID),
			logger.String("transaction_id", txID),
			logger.Err(err))
		return
	}

	logger.InfoCtx(ctx, "Payment executed",
		logger.String("payment_id", p.PaymentID),
		logger.String("transaction_id", txID),
		logger.String("status", string(status)))

	if _, err := uc.balances.DetectDrop(ctx, user, 0); err != nil {
		logger.WarnCtx(ctx, "Balance drop check failed", logger.String("user_id", user.UserID), logger.Err(err))
	}
	uc.publish(ctx, updated, "")
}

// fail moves p to FAILED, returning nil when the store rejected the update
func (uc *schedulerUC) fail(ctx context.Context, p *models.Payment, reason string, retryable bool, attempts int) *models.Payment {
	updated, err := uc.payments.UpdateStatus(ctx, p.PaymentID, models.PaymentStatusFailed, models.PaymentUpdate{
		FailureReason: &reason,
		Retryable:     &retryable,
		Attempts:      &attempts,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to record payment failure",
			logger.String("payment_id", p.PaymentID),
			logger.String("reason", reason),
			logger.Err(err))
		return nil
	}

	logger.WarnCtx(ctx, "Payment failed",
		logger.String("payment_id", p.PaymentID),
		logger.String("reason", reason),
		logger.Bool("retryable", retryable),
		logger.Int("attempts", attempts))
	uc.publish(ctx, updated, reason)
	return updated
}

func (uc *schedulerUC) publish(ctx context.Context, p *models.Payment, reason string) {
	if uc.events == nil {
		return
	}
	event := models.PaymentEvent{
		PaymentID:  p.PaymentID,
		UserID:     p.UserID,
		Status:     p.Status,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Reason:     reason,
		OccurredAt: uc.now().UTC(),
	}
	if p.TransactionID != nil {
		event.TransactionID = *p.TransactionID
	}
	if err := uc.events.PublishPaymentEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event", logger.String("payment_id", p.PaymentID), logger.Err(err))
	}
}

func (uc *schedulerUC) leaseTTL() time.Duration {
	if uc.cfg.Scheduler.LeaseTTL > 0 {
		return uc.cfg.Scheduler.LeaseTTL
	}
	return defaultLeaseTTL
}
