package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

const redisScanBatch = 100

// RedisCacheProviderAdapter implements CacheProvider port using Redis.
// Every key is stored under a prefix so Clear only touches this application's entries.
type RedisCacheProviderAdapter struct {
	client *redis.Client
	prefix string
	stats  cacheStatsRecorder
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection with a ping
func NewRedisCacheProviderAdapter(config *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return NewRedisCacheProviderFromClient(client, config.KeyPrefix), nil
}

// NewRedisCacheProviderFromClient wraps an existing client without pinging it
func NewRedisCacheProviderFromClient(client *redis.Client, prefix string) *RedisCacheProviderAdapter {
	return &RedisCacheProviderAdapter{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}

	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}

	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}

	return count > 0, nil
}

// Clear removes every key under the prefix. Without a prefix the whole database is flushed.
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear operation failed", err)
		}
		return nil
	}

	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanBatch).Iterator()
	batch := make([]string, 0, redisScanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewExternalAPIError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan operation failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear operation failed", err)
		}
	}

	return nil
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.stats.snapshot(time.Now())
}

func (r *RedisCacheProviderAdapter) RecordHit() {
	r.stats.recordHit()
}

func (r *RedisCacheProviderAdapter) RecordMiss() {
	r.stats.recordMiss()
}

func (r *RedisCacheProviderAdapter) RecordOperation(operation string, duration time.Duration) {
	r.stats.recordOperation(operation, duration)
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
