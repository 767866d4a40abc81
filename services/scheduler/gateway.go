package scheduler

import (
	"context"
	"time"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// ExecutionEngine performs a transfer for a payment. It never returns an error;
// failures are reported in the result.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/arcpay/services/scheduler ExecutionEngine,Locker
type ExecutionEngine interface {
	Execute(ctx context.Context, payment *models.Payment) models.ExecutionResult
}

// Locker hands out short-lived per-payment claims so concurrent ticks never process
// the same payment twice. Claim reports false when another holder owns the lease.
type Locker interface {
	Claim(ctx context.Context, paymentID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, paymentID string) error
}
