package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/arcpay/internal/pkg/database"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	client, mr := setupMockRedis(t)
	cache := NewRedisCache(client, time.Hour)
	ctx := context.Background()

	miss, err := cache.Get(ctx, "user-1", "USDC")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.Set(ctx, "user-1", models.Balance{Balance: decimal.RequireFromString("75.5"), Currency: "USDC"}))

	got, err := cache.Get(ctx, "user-1", "USDC")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "75.5", got.Balance.String())
	assert.Equal(t, time.Hour, mr.TTL("arcpay:balance:user-1"))

	other, err := cache.Get(ctx, "user-1", "EURC")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	client, mr := setupMockRedis(t)
	cache := NewRedisCache(client, time.Hour)
	mr.HSet("arcpay:balance:user-1", "USDC", "not-json")

	_, err := cache.Get(context.Background(), "user-1", "USDC")
	assert.ErrorContains(t, err, "failed to decode cached balance")
}

func TestRedisCache_ConnectionError(t *testing.T) {
	client, mr := setupMockRedis(t)
	cache := NewRedisCache(client, time.Hour)
	mr.Close()

	_, err := cache.Get(context.Background(), "user-1", "USDC")
	assert.Error(t, err)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	miss, err := cache.Get(ctx, "user-1", "USDC")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.Set(ctx, "user-1", models.Balance{Balance: decimal.NewFromInt(10), Currency: "USDC"}))
	got, err := cache.Get(ctx, "user-1", "USDC")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(got.Balance))
}
