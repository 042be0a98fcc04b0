package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		KeyPrefix:    "weatherplaylist:",
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(nil)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("ValidConfig", func(t *testing.T) {
		_, cfg := setupMockRedis(t)

		adapter, err := NewRedisCacheProviderAdapter(cfg)
		require.NoError(t, err)
		assert.NoError(t, adapter.Ping(context.Background()))
		assert.NoError(t, adapter.Close())
	})

	t.Run("ServerDown", func(t *testing.T) {
		mockRedis, cfg := setupMockRedis(t)
		mockRedis.Close()

		adapter, err := NewRedisCacheProviderAdapter(cfg)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	t.Run("SetAndGetUsesPrefix", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "city-sao paulo", []byte("27.3"), time.Minute))

		retrieved, err := adapter.Get(ctx, "city-sao paulo")
		require.NoError(t, err)
		assert.Equal(t, []byte("27.3"), retrieved)

		stored, err := mockRedis.Get("weatherplaylist:city-sao paulo")
		require.NoError(t, err)
		assert.Equal(t, "27.3", stored)
		assert.Equal(t, time.Minute, mockRedis.TTL("weatherplaylist:city-sao paulo"))
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "city-nowhere")

		assert.Nil(t, retrieved)
		var appErr *errors.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
		}
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "genre-rock", []byte(`["X - A"]`), time.Minute))

		exists, err := adapter.Exists(ctx, "genre-rock")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "genre-rock"))

		exists, err = adapter.Exists(ctx, "genre-rock")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "city-recife", []byte("28"), 600*time.Second))

		mockRedis.FastForward(599 * time.Second)
		_, err := adapter.Get(ctx, "city-recife")
		require.NoError(t, err)

		mockRedis.FastForward(2 * time.Second)
		_, err = adapter.Get(ctx, "city-recife")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRedisCacheProviderAdapter_ClearOnlyTouchesPrefix(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, mockRedis.Set("other-app:key", "keep"))
	for _, key := range []string{"city-a", "city-b", "genre-c"} {
		require.NoError(t, adapter.Set(ctx, key, []byte("v"), time.Minute))
	}

	require.NoError(t, adapter.Clear(ctx))

	assert.Equal(t, []string{"other-app:key"}, mockRedis.Keys())
}

func TestRedisCacheProviderAdapter_ClearWithoutPrefixFlushes(t *testing.T) {
	mockRedis := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mockRedis.Addr()})
	adapter := NewRedisCacheProviderFromClient(client, "")
	defer func() { _ = adapter.Close() }()

	require.NoError(t, mockRedis.Set("anything", "x"))
	require.NoError(t, adapter.Clear(context.Background()))

	assert.Empty(t, mockRedis.Keys())
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	_, err = adapter.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", []byte("v"), -time.Second)))
	assert.True(t, errors.IsValidationError(adapter.Delete(ctx, "")))

	_, err = adapter.Exists(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestRedisCacheProviderAdapter_Metrics(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = adapter.Get(ctx, "k")
	_, _ = adapter.Get(ctx, "missing")
	assert.Zero(t, adapter.GetStats().TotalOps)

	adapter.RecordHit()
	adapter.RecordHit()
	adapter.RecordMiss()
	adapter.RecordOperation("set", 6*time.Millisecond)

	stats := adapter.GetStats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 1e-9)
	assert.Equal(t, int64(1), stats.Operations["set"].Count)
	assert.Equal(t, 6*time.Millisecond, stats.Operations["set"].AvgDuration)
}

func TestRedisCacheProviderAdapter_BackendFailure(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	mockRedis.SetError("ERR simulated failure")

	_, err = adapter.Get(context.Background(), "city-recife")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.True(t, errors.IsExternalAPIError(adapter.Set(context.Background(), "k", []byte("v"), time.Minute)))
}
