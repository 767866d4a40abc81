package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/arcpay/internal/pkg/constants"
	"github.com/piresc/arcpay/internal/pkg/database"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// RedisCache stores the last balance per user in a hash keyed by currency
type RedisCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewRedisCache creates a cache whose per-user hash expires after ttl
func NewRedisCache(client *database.RedisClient, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, ttl: ttl}
}

// Get returns the cached balance or nil
func (c *RedisCache) Get(ctx context.Context, userID, currency string) (*models.Balance, error) {
	raw, err := c.redis.HGet(ctx, fmt.Sprintf(constants.KeyBalanceCache, userID), currency)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached balance: %w", err)
	}

	var b models.Balance
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("failed to decode cached balance: %w", err)
	}
	return &b, nil
}

// Set stores balance under its currency
func (c *RedisCache) Set(ctx context.Context, userID string, b models.Balance) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode balance: %w", err)
	}
	if err := c.redis.HSet(ctx, fmt.Sprintf(constants.KeyBalanceCache, userID), b.Currency, string(data), c.ttl); err != nil {
		return fmt.Errorf("failed to cache balance: %w", err)
	}
	return nil
}
