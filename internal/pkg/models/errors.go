package models

import "errors"

var (
	// ErrEmptyInput is returned when a command carries no text
	ErrEmptyInput = errors.New("empty input")
	// ErrMissingAmount is returned when no amount could be determined for a payment
	ErrMissingAmount = errors.New("amount is required")
	// ErrInvalidAmount is returned for non-positive amounts
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrUnknownUser is returned when the requesting user does not exist
	ErrUnknownUser = errors.New("unknown user")
	// ErrPaymentNotFound is returned when a payment id has no record
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrIllegalTransition is returned when a status update is not allowed from the current status
	ErrIllegalTransition = errors.New("illegal payment status transition")
	// ErrNoLinkedAccount is returned when a user has no account to read a balance from
	ErrNoLinkedAccount = errors.New("no linked account")
	// ErrLeaseHeld is returned when another worker holds the claim on a payment
	ErrLeaseHeld = errors.New("payment lease held by another worker")
)

// IsValidationError reports whether err is caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrMissingAmount) ||
		errors.Is(err, ErrInvalidAmount)
}
