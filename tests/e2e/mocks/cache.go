package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"
)

type InMemoryCache struct{}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest any) error {
	return sql.ErrNoRows
}

func (c *InMemoryCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	return nil
}

func (c *InMemoryCache) Del(ctx context.Context, keys ...string) error {
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// TrackingCache counts cache traffic. The handler layer writes to the
// cache from background goroutines, so all state is mutex-guarded.
type TrackingCache struct {
	mu       sync.Mutex
	getCalls int
	setCalls int
	delCalls int
	data     map[string]CacheEntry
}

type CacheEntry struct {
	Value  any
	Expiry time.Time
}

func NewTrackingCache() *TrackingCache {
	return &TrackingCache{
		data: make(map[string]CacheEntry),
	}
}

func (c *TrackingCache) Get(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	if entry, exists := c.data[key]; exists && time.Now().Before(entry.Expiry) {
		return nil
	}
	return sql.ErrNoRows
}

func (c *TrackingCache) Set(ctx context.Context, key string, value any, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	c.data[key] = CacheEntry{
		Value:  value,
		Expiry: time.Now().Add(exp),
	}
	return nil
}

func (c *TrackingCache) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delCalls++
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return nil
}

// Stats returns the current call counts.
func (c *TrackingCache) Stats() (gets, sets, dels int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCalls, c.setCalls, c.delCalls
}
