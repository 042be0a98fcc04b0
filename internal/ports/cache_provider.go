package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for raw key/value caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheMetrics defines the contract for cache performance tracking.
// Hits and misses are counted once per lookup by the caller, not per backend read.
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
	RecordOperation(operation string, duration time.Duration)
}

// CacheSerializer defines the contract for data serialization
type CacheSerializer interface {
	Serialize(data interface{}) ([]byte, error)
	Deserialize(data []byte, target interface{}) error
}

// ComputeFunc produces the value for a missing key together with how long it stays valid
type ComputeFunc func(ctx context.Context) (value interface{}, ttl time.Duration, err error)

// ComputeCache is the cache-aside collaborator used by the lookups.
// GetOrCompute decodes the cached value for key into target. On a miss it runs compute,
// stores the result for the returned TTL and decodes it into target. A failed compute
// stores nothing.
type ComputeCache interface {
	GetOrCompute(ctx context.Context, key string, target interface{}, compute ComputeFunc) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	Operations  map[string]CacheOperationStats
	LastUpdated time.Time
}

// CacheOperationStats aggregates timings of one backend operation such as "get" or "set"
type CacheOperationStats struct {
	Count       int64
	AvgDuration time.Duration
}
