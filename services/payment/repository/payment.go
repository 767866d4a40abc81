package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
)

const paymentColumns = `payment_id, user_id, recipient_id, recipient_address, amount, currency,
	conditions, status, scheduled_timestamp, transaction_id, last_executed_at,
	failure_reason, retryable, attempts, created_at, updated_at`

// PaymentRepo stores payments in postgres
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	now func() time.Time
}

// NewPaymentRepository creates a postgres payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	logger.Info("Initializing payment repository")
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
		now: time.Now,
	}
}

// List returns payments ordered by creation time. An empty userID lists every payment.
func (r *PaymentRepo) List(ctx context.Context, userID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments`
	var args []interface{}
	if userID != "" {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at, payment_id`

	var payments []*models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// Get returns the payment or models.ErrPaymentNotFound
func (r *PaymentRepo) Get(ctx context.Context, paymentID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1`, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return &p, nil
}

// Upsert inserts the payment or replaces the stored record with the same id
func (r *PaymentRepo) Upsert(ctx context.Context, p *models.Payment) error {
	now := r.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (:payment_id, :user_id, :recipient_id, :recipient_address, :amount, :currency,
			:conditions, :status, :scheduled_timestamp, :transaction_id, :last_executed_at,
			:failure_reason, :retryable, :attempts, :created_at, :updated_at)
		ON CONFLICT (payment_id) DO UPDATE SET
			recipient_id = EXCLUDED.recipient_id,
			recipient_address = EXCLUDED.recipient_address,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			conditions = EXCLUDED.conditions,
			status = EXCLUDED.status,
			scheduled_timestamp = EXCLUDED.scheduled_timestamp,
			transaction_id = EXCLUDED.transaction_id,
			last_executed_at = EXCLUDED.last_executed_at,
			failure_reason = EXCLUDED.failure_reason,
			retryable = EXCLUDED.retryable,
			attempts = EXCLUDED.attempts,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to upsert payment %s: %w", p.PaymentID, err)
	}
	return nil
}

// UpdateStatus moves a payment to status in one conditional statement.
// The WHERE clause only matches rows whose current status may transition to status.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus, update models.PaymentUpdate) (*models.Payment, error) {
	sources := models.SourceStatuses(status)
	if len(sources) == 0 {
		return nil, models.ErrIllegalTransition
	}

	sets := []string{"status = ?", "updated_at = ?"}
	args := []interface{}{status, r.now().UTC()}
	if update.ScheduledTimestamp != nil {
		sets = append(sets, "scheduled_timestamp = ?")
		args = append(args, update.ScheduledTimestamp.UTC())
	}
	if update.TransactionID != nil {
		sets = append(sets, "transaction_id = ?")
		args = append(args, *update.TransactionID)
	}
	if update.LastExecutedAt != nil {
		sets = append(sets, "last_executed_at = ?")
		args = append(args, update.LastExecutedAt.UTC())
	}
	if update.FailureReason != nil {
		sets = append(sets, "failure_reason = ?")
		args = append(args, *update.FailureReason)
	}
	if update.Retryable != nil {
		sets = append(sets, "retryable = ?")
		args = append(args, *update.Retryable)
	}
	if update.Attempts != nil {
		sets = append(sets, "attempts = ?")
		args = append(args, *update.Attempts)
	}
	args = append(args, paymentID, sources)

	query, args, err := sqlx.In(
		`UPDATE payments SET `+strings.Join(sets, ", ")+
			` WHERE payment_id = ? AND status IN (?) RETURNING `+paymentColumns,
		args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build status update: %w", err)
	}

	var p models.Payment
	err = r.db.GetContext(ctx, &p, r.db.Rebind(query), args...)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update payment %s: %w", paymentID, err)
	}

	// no row matched: either the payment is missing or its status forbids the move
	if _, getErr := r.Get(ctx, paymentID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("payment %s to %s: %w", paymentID, status, models.ErrIllegalTransition)
}
