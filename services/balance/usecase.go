package balance

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// BalanceUC reads balances and guards payments against insufficient funds
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/balance BalanceUC
type BalanceUC interface {
	FetchBalance(ctx context.Context, user *models.User) (*models.Balance, error)
	EnsureSufficient(ctx context.Context, user *models.User, amount decimal.Decimal) bool
	DetectDrop(ctx context.Context, user *models.User, threshold float64) (bool, error)
}
