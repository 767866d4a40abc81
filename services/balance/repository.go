package balance

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// BalanceCache keeps the last balance seen per user and currency. A miss is (nil, nil).
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/arcpay/services/balance BalanceCache
type BalanceCache interface {
	Get(ctx context.Context, userID, currency string) (*models.Balance, error)
	Set(ctx context.Context, userID string, balance models.Balance) error
}
