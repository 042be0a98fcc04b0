package external

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// JSONSerializer implements CacheSerializer with encoding/json
type JSONSerializer struct{}

func (JSONSerializer) Serialize(data interface{}) ([]byte, error) {
	return json.Marshal(data)
}

func (JSONSerializer) Deserialize(data []byte, target interface{}) error {
	return json.Unmarshal(data, target)
}

// ComputeCacheAdapter implements the compute-if-absent ComputeCache port on top of any CacheProvider.
// Concurrent misses for the same key share a single computation.
// Each GetOrCompute counts exactly one hit or one miss.
type ComputeCacheAdapter struct {
	provider     ports.CacheProvider
	serializer   ports.CacheSerializer
	cacheMetrics ports.CacheMetrics
	metrics      ports.MetricsCollector
	cacheType  string
	logger     ports.Logger
	group      singleflight.Group
}

// ComputeCacheParams holds parameters for creating the compute cache.
// CacheMetrics defaults to Provider when the provider implements it.
type ComputeCacheParams struct {
	Provider     ports.CacheProvider
	Serializer   ports.CacheSerializer
	CacheMetrics ports.CacheMetrics
	Metrics      ports.MetricsCollector
	CacheType    string
	Logger       ports.Logger
}

func NewComputeCacheAdapter(params ComputeCacheParams) (*ComputeCacheAdapter, error) {
	if params.Provider == nil {
		return nil, errors.NewConfigurationError("cache provider is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	serializer := params.Serializer
	if serializer == nil {
		serializer = JSONSerializer{}
	}

	cacheMetrics := params.CacheMetrics
	if cacheMetrics == nil {
		cacheMetrics, _ = params.Provider.(ports.CacheMetrics)
	}

	return &ComputeCacheAdapter{
		provider:     params.Provider,
		serializer:   serializer,
		cacheMetrics: cacheMetrics,
		metrics:      params.Metrics,
		cacheType:    params.CacheType,
		logger:       params.Logger,
	}, nil
}

// GetOrCompute decodes the cached value for key into target, computing and storing it on a miss.
// Backend read and write failures degrade to computing the value. Compute errors are returned
// unchanged and nothing is stored.
func (c *ComputeCacheAdapter) GetOrCompute(ctx context.Context, key string, target interface{}, compute ports.ComputeFunc) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if compute == nil {
		return errors.NewValidationError("compute function is required")
	}

	if data, ok := c.lookup(ctx, key); ok {
		err := c.serializer.Deserialize(data, target)
		if err == nil {
			c.recordHit(ctx)
			return nil
		}
		c.logger.Warn("Discarding undecodable cache entry",
			ports.F("key", key),
			ports.F("error", err))
		if delErr := c.provider.Delete(ctx, key); delErr != nil {
			c.logger.Warn("Failed to delete undecodable cache entry",
				ports.F("key", key),
				ports.F("error", delErr))
		}
	}
	c.recordMiss(ctx)

	result, err, shared := c.group.Do(key, func() (interface{}, error) {
		if data, ok := c.lookup(ctx, key); ok {
			return data, nil
		}
		return c.computeAndStore(ctx, key, compute)
	})
	if err != nil {
		return err
	}
	if shared {
		c.logger.Debug("Shared in-flight computation", ports.F("key", key))
	}

	if err := c.serializer.Deserialize(result.([]byte), target); err != nil {
		return errors.Wrap(errors.ErrorTypeUnknown, "failed to decode computed value", err)
	}
	return nil
}

func (c *ComputeCacheAdapter) computeAndStore(ctx context.Context, key string, compute ports.ComputeFunc) ([]byte, error) {
	value, ttl, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	data, err := c.serializer.Serialize(value)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnknown, "failed to encode computed value", err)
	}

	start := time.Now()
	if err := c.provider.Set(ctx, key, data, ttl); err != nil {
		c.logger.Warn("Failed to store computed value",
			ports.F("key", key),
			ports.F("ttl", ttl.String()),
			ports.F("error", err))
	}
	c.recordLatency(ctx, "set", time.Since(start))

	return data, nil
}

func (c *ComputeCacheAdapter) lookup(ctx context.Context, key string) ([]byte, bool) {
	start := time.Now()
	data, err := c.provider.Get(ctx, key)
	c.recordLatency(ctx, "get", time.Since(start))

	if err != nil {
		if !errors.IsNotFoundError(err) {
			c.logger.Warn("Cache read failed, computing value",
				ports.F("key", key),
				ports.F("error", err))
		}
		return nil, false
	}
	return data, true
}

func (c *ComputeCacheAdapter) recordHit(ctx context.Context) {
	if c.cacheMetrics != nil {
		c.cacheMetrics.RecordHit()
	}
	if c.metrics != nil {
		c.metrics.RecordCacheHit(ctx, c.cacheType)
	}
}

func (c *ComputeCacheAdapter) recordMiss(ctx context.Context) {
	if c.cacheMetrics != nil {
		c.cacheMetrics.RecordMiss()
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(ctx, c.cacheType)
	}
}

func (c *ComputeCacheAdapter) recordLatency(ctx context.Context, operation string, duration time.Duration) {
	if c.cacheMetrics != nil {
		c.cacheMetrics.RecordOperation(operation, duration)
	}
	if c.metrics != nil {
		c.metrics.RecordCacheLatency(ctx, c.cacheType, operation, duration)
	}
}
