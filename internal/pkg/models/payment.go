package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a scheduled payment
type PaymentStatus string

const (
	PaymentStatusAwaitingConfirmation PaymentStatus = "AWAITING_CONFIRMATION"
	PaymentStatusApproved             PaymentStatus = "APPROVED"
	PaymentStatusScheduled            PaymentStatus = "SCHEDULED"
	PaymentStatusExecuted             PaymentStatus = "EXECUTED"
	PaymentStatusFailed               PaymentStatus = "FAILED"
	PaymentStatusDenied               PaymentStatus = "DENIED"
)

// Failure reasons recorded by the scheduler
const (
	FailureInsufficientFunds = "FAILED_INSUFFICIENT_FUNDS"
	FailureUserMissing       = "User missing"
)

// transitions lists the statuses a payment may move to from each status.
// The empty status stands for a record that does not exist yet.
var transitions = map[PaymentStatus][]PaymentStatus{
	"":                     {PaymentStatusApproved},
	PaymentStatusApproved:  {PaymentStatusExecuted, PaymentStatusScheduled, PaymentStatusFailed},
	PaymentStatusScheduled: {PaymentStatusExecuted, PaymentStatusScheduled, PaymentStatusFailed},
	PaymentStatusFailed:    {PaymentStatusExecuted, PaymentStatusScheduled, PaymentStatusFailed},
}

// CanTransition reports whether a payment in status from may move to status to
func CanTransition(from, to PaymentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SourceStatuses returns every status from which to is reachable
func SourceStatuses(to PaymentStatus) []PaymentStatus {
	var sources []PaymentStatus
	for _, from := range []PaymentStatus{PaymentStatusApproved, PaymentStatusScheduled, PaymentStatusFailed} {
		if CanTransition(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

// Payment is a scheduled transfer created by the guardian and advanced by the scheduler
type Payment struct {
	PaymentID          string          `json:"paymentId" db:"payment_id"`
	UserID             string          `json:"userId" db:"user_id"`
	RecipientID        string          `json:"recipientId" db:"recipient_id"`
	RecipientAddress   string          `json:"recipientAddress,omitempty" db:"recipient_address"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	Currency           string          `json:"currency" db:"currency"`
	Conditions         Schedule        `json:"conditions" db:"conditions"`
	Status             PaymentStatus   `json:"status" db:"status"`
	ScheduledTimestamp *time.Time      `json:"scheduledTimestamp,omitempty" db:"scheduled_timestamp"`
	TransactionID      *string         `json:"transactionId,omitempty" db:"transaction_id"`
	LastExecutedAt     *time.Time      `json:"lastExecutedAt,omitempty" db:"last_executed_at"`
	FailureReason      *string         `json:"failureReason,omitempty" db:"failure_reason"`
	Retryable          bool            `json:"retryable" db:"retryable"`
	Attempts           int             `json:"attempts" db:"attempts"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

// RunKey identifies one execution run of the payment. Recurring runs differ by scheduled timestamp,
// so the rail deduplicates retries of a run without collapsing later runs into the first.
func (p *Payment) RunKey() string {
	if p.ScheduledTimestamp == nil {
		return p.PaymentID
	}
	return p.PaymentID + ":" + p.ScheduledTimestamp.UTC().Format(time.RFC3339)
}

// PaymentUpdate carries the fields changed alongside a status update. Nil fields are left as-is.
type PaymentUpdate struct {
	ScheduledTimestamp *time.Time
	TransactionID      *string
	LastExecutedAt     *time.Time
	FailureReason      *string
	Retryable          *bool
	Attempts           *int
}

// Apply copies the non-nil fields of u onto p
func (u PaymentUpdate) Apply(p *Payment) {
	if u.ScheduledTimestamp != nil {
		ts := *u.ScheduledTimestamp
		p.ScheduledTimestamp = &ts
	}
	if u.TransactionID != nil {
		tx := *u.TransactionID
		p.TransactionID = &tx
	}
	if u.LastExecutedAt != nil {
		ts := *u.LastExecutedAt
		p.LastExecutedAt = &ts
	}
	if u.FailureReason != nil {
		reason := *u.FailureReason
		p.FailureReason = &reason
	}
	if u.Retryable != nil {
		p.Retryable = *u.Retryable
	}
	if u.Attempts != nil {
		p.Attempts = *u.Attempts
	}
}

// PaymentEvent is published on execution outcomes
type PaymentEvent struct {
	PaymentID     string          `json:"paymentId"`
	UserID        string          `json:"userId"`
	Status        PaymentStatus   `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TransactionID string          `json:"transactionId,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
