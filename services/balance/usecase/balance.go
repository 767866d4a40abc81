package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/balance"
	"github.com/piresc/arcpay/services/payment"
	"github.com/shopspring/decimal"
)

// DefaultDropThreshold is the relative decrease that triggers a drop alert
const DefaultDropThreshold = 0.2

type balanceUC struct {
	cfg      *models.Config
	api      payment.BalanceAPI
	cache    balance.BalanceCache
	notifier payment.Notifier
}

// NewBalanceUC creates the balance monitor
func NewBalanceUC(
	cfg *models.Config,
	api payment.BalanceAPI,
	cache balance.BalanceCache,
	notifier payment.Notifier,
) balance.BalanceUC {
	return &balanceUC{
		cfg:      cfg,
		api:      api,
		cache:    cache,
		notifier: notifier,
	}
}

// FetchBalance reads the primary account balance and records it as last seen
func (uc *balanceUC) FetchBalance(ctx context.Context, user *models.User) (*models.Balance, error) {
	account, ok := user.Primary()
	if !ok {
		logger.WarnCtx(ctx, "User has no linked accounts", logger.String("user_id", userID(user)))
		return nil, models.ErrNoLinkedAccount
	}

	b, err := uc.api.FetchBalance(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	key := uc.cacheCurrency(account)
	if b.Currency == "" {
		b.Currency = key
	}

	// cached under the account currency so DetectDrop reads the same key
	cached := *b
	cached.Currency = key
	if err := uc.cache.Set(ctx, user.UserID, cached); err != nil {
		logger.WarnCtx(ctx, "Failed to cache balance", logger.String("user_id", user.UserID), logger.Err(err))
	}
	return b, nil
}

// EnsureSufficient reports whether amount is positive and covered by the balance.
// A shortfall notifies the user; a failed lookup counts as insufficient.
func (uc *balanceUC) EnsureSufficient(ctx context.Context, user *models.User, amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	b, err := uc.FetchBalance(ctx, user)
	if err != nil {
		logger.WarnCtx(ctx, "Balance check failed", logger.String("user_id", userID(user)), logger.Err(err))
		return false
	}
	if b.Balance.GreaterThanOrEqual(amount) {
		return true
	}

	message := fmt.Sprintf("Balance check failed for %s: required %s, available %s.", user.Name, amount.String(), b.Balance.String())
	if err := uc.notifier.NotifyUser(ctx, user, message, ""); err != nil {
		logger.WarnCtx(ctx, "Failed to notify user", logger.String("user_id", user.UserID), logger.Err(err))
	}
	return false
}

// DetectDrop compares a fresh balance with the last seen one and emails the user
// when it fell by at least threshold. A threshold <= 0 uses the configured default.
func (uc *balanceUC) DetectDrop(ctx context.Context, user *models.User, threshold float64) (bool, error) {
	if threshold <= 0 {
		threshold = uc.dropThreshold()
	}

	account, ok := user.Primary()
	if !ok {
		return false, nil
	}

	prev, err := uc.cache.Get(ctx, user.UserID, uc.cacheCurrency(account))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read cached balance", logger.String("user_id", user.UserID), logger.Err(err))
		prev = nil
	}

	current, err := uc.FetchBalance(ctx, user)
	if err != nil {
		return false, err
	}
	if prev == nil || prev.Balance.IsZero() {
		return false, nil
	}

	ratio, _ := prev.Balance.Sub(current.Balance).Div(prev.Balance).Float64()
	if ratio < threshold {
		return false, nil
	}

	message := fmt.Sprintf("Balance dropped by %.0f%%. Current balance: %s %s", ratio*100, current.Balance.String(), current.Currency)
	if err := uc.notifier.NotifyUser(ctx, user, message, models.ChannelEmail); err != nil {
		logger.WarnCtx(ctx, "Failed to notify balance drop", logger.String("user_id", user.UserID), logger.Err(err))
	}
	return true, nil
}

func (uc *balanceUC) cacheCurrency(account models.LinkedAccount) string {
	if account.Currency != "" {
		return account.Currency
	}
	if uc.cfg != nil && uc.cfg.Guardian.DefaultCurrency != "" {
		return uc.cfg.Guardian.DefaultCurrency
	}
	return "USDC"
}

func (uc *balanceUC) dropThreshold() float64 {
	if uc.cfg != nil && uc.cfg.Balance.DropThreshold > 0 {
		return uc.cfg.Balance.DropThreshold
	}
	return DefaultDropThreshold
}

func userID(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.UserID
}
