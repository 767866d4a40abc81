package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/arcpay/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker_ClaimRelease(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	first := NewRedisLocker(client, "worker-1")
	second := NewRedisLocker(client, "worker-2")
	ctx := context.Background()

	ok, err := first.Claim(ctx, "pay-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, mr.TTL("arcpay:payment:lease:pay-1"))

	got, err := mr.Get("arcpay:payment:lease:pay-1")
	require.NoError(t, err)
	assert.Equal(t, "worker-1", got)

	ok, err = second.Claim(ctx, "pay-1", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Release(ctx, "pay-1"))
	ok, err = second.Claim(ctx, "pay-1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_LeaseExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	locker := NewRedisLocker(client, "worker-1")
	ctx := context.Background()

	ok, err := locker.Claim(ctx, "pay-1", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err = locker.Claim(ctx, "pay-1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(&database.RedisClient{Client: db}, "worker-1")
	ctx := context.Background()

	mock.ExpectSetNX("arcpay:payment:lease:pay-1", "worker-1", time.Minute).SetErr(errors.New("connection refused"))
	mock.ExpectDel("arcpay:payment:lease:pay-1").SetErr(errors.New("connection refused"))

	ok, err := locker.Claim(ctx, "pay-1", time.Minute)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "failed to claim lease for pay-1")

	err = locker.Release(ctx, "pay-1")
	assert.ErrorContains(t, err, "failed to release lease for pay-1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryLocker(t *testing.T) {
	locker := NewMemoryLocker()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	locker.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := locker.Claim(ctx, "pay-1", time.Minute)
	assert.True(t, ok)
	ok, _ = locker.Claim(ctx, "pay-1", time.Minute)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = locker.Claim(ctx, "pay-1", time.Minute)
	assert.True(t, ok, "expired lease is reclaimable")

	require.NoError(t, locker.Release(ctx, "pay-1"))
	ok, _ = locker.Claim(ctx, "pay-1", time.Minute)
	assert.True(t, ok)
}
