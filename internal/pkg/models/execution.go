package models

import "github.com/shopspring/decimal"

// ExecutionStatus values reported by the execution engine
const (
	ExecutionStatusSubmitted = "submitted"
	ExecutionStatusFailed    = "failed"
	ExecutionStatusSkipped   = "skipped"
)

// ExecutionRecipient identifies the payee of a transfer
type ExecutionRecipient struct {
	RecipientID string `json:"recipientId"`
	Address     string `json:"address,omitempty"`
}

// ExecutionMetadata is attached to every transfer to tag it with its payment
type ExecutionMetadata struct {
	PaymentID string `json:"paymentId"`
}

// ExecutionRequest is the payload sent to the payment API.
// IdempotencyKey is scoped to one run and travels in the Idempotency-Key header.
type ExecutionRequest struct {
	Amount         decimal.Decimal    `json:"amount"`
	Currency       string             `json:"currency"`
	Recipient      ExecutionRecipient `json:"recipient"`
	Metadata       ExecutionMetadata  `json:"metadata"`
	IdempotencyKey string             `json:"-"`
}

// Key returns the idempotency key, falling back to the payment id
func (r ExecutionRequest) Key() string {
	if r.IdempotencyKey != "" {
		return r.IdempotencyKey
	}
	return r.Metadata.PaymentID
}

// ExecutionResponse is the payment API reply for an accepted transfer
type ExecutionResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

// ExecutionResult is the normalized outcome of an execution attempt
type ExecutionResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// TickResult reports what the scheduler did with one payment
type TickResult struct {
	PaymentID string          `json:"paymentId"`
	Result    ExecutionResult `json:"result"`
}
