package repository

import (
	"context"
	"sync"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// MemoryCache is a process-local BalanceCache
type MemoryCache struct {
	mu       sync.RWMutex
	balances map[string]map[string]models.Balance
}

// NewMemoryCache creates an empty cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{balances: make(map[string]map[string]models.Balance)}
}

// Get returns the cached balance or nil
func (c *MemoryCache) Get(_ context.Context, userID, currency string) (*models.Balance, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.balances[userID][currency]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// Set stores balance under its currency
func (c *MemoryCache) Set(_ context.Context, userID string, b models.Balance) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balances[userID] == nil {
		c.balances[userID] = make(map[string]models.Balance)
	}
	c.balances[userID][b.Currency] = b
	return nil
}
