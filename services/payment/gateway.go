package payment

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// PaymentAPI is the external transfer rail
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/arcpay/services/payment PaymentAPI,BalanceAPI,Notifier,EventPublisher
type PaymentAPI interface {
	Execute(ctx context.Context, req models.ExecutionRequest) (*models.ExecutionResponse, error)
	VerifyRecipient(ctx context.Context, address string) (*models.VerificationResult, error)
}

// BalanceAPI reads wallet balances
type BalanceAPI interface {
	FetchBalance(ctx context.Context, account models.LinkedAccount) (*models.Balance, error)
}

// Notifier hands messages to the delivery service.
// An empty channel means the user's preferred channel.
type Notifier interface {
	NotifyUser(ctx context.Context, user *models.User, message, channel string) error
	NotifyAdmin(ctx context.Context, subject, body string) error
}

// EventPublisher announces execution outcomes
type EventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) error
}
