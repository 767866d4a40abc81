package database

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr), PoolSize: 2})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0))
	got, err := client.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSet("balance:u1", "100", time.Hour).SetVal("OK")

	err := client.Set(context.Background(), "balance:u1", "100", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("missing").RedisNil()
	mock.ExpectGet("present").SetVal("value")

	_, err := client.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, redis.Nil))

	got, err := client.Get(context.Background(), "present")
	assert.NoError(t, err)
	assert.Equal(t, "value", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetNX(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSetNX("lease:pay-1", "owner", time.Minute).SetVal(true)
	mock.ExpectSetNX("lease:pay-1", "other", time.Minute).SetVal(false)

	ok, err := client.SetNX(context.Background(), "lease:pay-1", "owner", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(context.Background(), "lease:pay-1", "other", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("k").SetErr(errors.New("connection reset"))

	err := client.Delete(context.Background(), "k")
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HashWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClientFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, client.HSet(ctx, "h", "USDC", "42.5", time.Hour))

	got, err := client.HGet(ctx, "h", "USDC")
	require.NoError(t, err)
	assert.Equal(t, "42.5", got)
	assert.Equal(t, time.Hour, mr.TTL("h"))

	_, err = client.HGet(ctx, "h", "EURC")
	assert.True(t, errors.Is(err, redis.Nil))
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
