package external

import (
	"context"
	"sync"
	"time"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// MemoryCacheProvider keeps entries in process memory with per-entry expiry.
// Expired entries are dropped lazily on read.
type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
	now   func() time.Time
	stats cacheStatsRecorder
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCacheOption configures a MemoryCacheProvider
type MemoryCacheOption func(*MemoryCacheProvider)

// WithClock replaces the wall clock used for expiry
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCacheProvider) {
		if now != nil {
			c.now = now
		}
	}
}

func NewMemoryCacheProvider(opts ...MemoryCacheOption) *MemoryCacheProvider {
	c := &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if exists && !c.expired(item) {
		return item.data, nil
	}

	if exists {
		c.evictIfExpired(key)
	}
	return nil, errors.NewNotFoundError("cache miss")
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	return exists && !c.expired(item), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

// Len returns the number of stored entries, expired ones included until they are read
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot(c.now())
}

func (c *MemoryCacheProvider) RecordHit() {
	c.stats.recordHit()
}

func (c *MemoryCacheProvider) RecordMiss() {
	c.stats.recordMiss()
}

func (c *MemoryCacheProvider) RecordOperation(operation string, duration time.Duration) {
	c.stats.recordOperation(operation, duration)
}

func (c *MemoryCacheProvider) expired(item memoryCacheItem) bool {
	return !c.now().Before(item.expiresAt)
}

// evictIfExpired re-checks under the write lock so a concurrent Set is not lost
func (c *MemoryCacheProvider) evictIfExpired(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if item, ok := c.data[key]; ok && c.expired(item) {
		delete(c.data, key)
	}
}
