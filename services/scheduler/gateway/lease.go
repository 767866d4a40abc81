package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/arcpay/internal/pkg/constants"
	"github.com/piresc/arcpay/internal/pkg/database"
	"github.com/piresc/arcpay/services/scheduler"
)

// RedisLocker holds payment leases as SET NX keys with a ttl
type RedisLocker struct {
	client *database.RedisClient
	owner  string
}

var _ scheduler.Locker = (*RedisLocker)(nil)

// NewRedisLocker creates a redis backed locker. owner is stored as the key value.
func NewRedisLocker(client *database.RedisClient, owner string) *RedisLocker {
	return &RedisLocker{client: client, owner: owner}
}

// Claim sets the lease key when absent
func (l *RedisLocker) Claim(ctx context.Context, paymentID string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, fmt.Sprintf(constants.KeyPaymentLease, paymentID), l.owner, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim lease for %s: %w", paymentID, err)
	}
	return ok, nil
}

// Release deletes the lease key
func (l *RedisLocker) Release(ctx context.Context, paymentID string) error {
	if err := l.client.Delete(ctx, fmt.Sprintf(constants.KeyPaymentLease, paymentID)); err != nil {
		return fmt.Errorf("failed to release lease for %s: %w", paymentID, err)
	}
	return nil
}

// MemoryLocker is the single process locker
type MemoryLocker struct {
	mu     sync.Mutex
	leases map[string]time.Time
	now    func() time.Time
}

var _ scheduler.Locker = (*MemoryLocker)(nil)

// NewMemoryLocker creates an empty in-process locker
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{
		leases: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Claim takes the lease unless an unexpired one exists
func (l *MemoryLocker) Claim(_ context.Context, paymentID string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if expiry, ok := l.leases[paymentID]; ok && now.Before(expiry) {
		return false, nil
	}
	l.leases[paymentID] = now.Add(ttl)
	return true, nil
}

// Release drops the lease
func (l *MemoryLocker) Release(_ context.Context, paymentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.leases, paymentID)
	return nil
}
