package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/mocks"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

type namedProvider string

func (n namedProvider) GetProviderName() string { return string(n) }

func TestCacheHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Exists(mock.Anything, healthProbeKey).Return(false, nil)

		status := NewCacheHealthChecker(cache, "memory").Check(context.Background())

		assert.Equal(t, "cache", status.Component)
		assert.Equal(t, statusHealthy, status.Status)
		assert.Equal(t, "memory", status.Details["type"])
		assert.Contains(t, status.Details, "latency_ms")
		assert.Empty(t, status.Error)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		cache := mocks.NewCacheProvider(t)
		cache.EXPECT().Exists(mock.Anything, healthProbeKey).
			Return(false, errors.NewExternalAPIError("redis exists operation failed", nil))

		status := NewCacheHealthChecker(cache, "redis").Check(context.Background())

		assert.Equal(t, statusUnhealthy, status.Status)
		assert.Contains(t, status.Error, "redis exists operation failed")
	})

	t.Run("NotConfigured", func(t *testing.T) {
		status := NewCacheHealthChecker(nil, "memory").Check(context.Background())

		assert.Equal(t, statusUnhealthy, status.Status)
		assert.Equal(t, "cache backend is not configured", status.Error)
	})
}

func TestProviderHealthChecker(t *testing.T) {
	status := NewProviderHealthChecker("weather", namedProvider("openweathermap")).Check(context.Background())
	assert.Equal(t, statusHealthy, status.Status)
	assert.Equal(t, "openweathermap", status.Details["provider"])

	status = NewProviderHealthChecker("playlist", nil).Check(context.Background())
	assert.Equal(t, statusUnhealthy, status.Status)
	assert.Equal(t, "playlist provider is not available", status.Error)
	assert.Equal(t, false, status.Details["configured"])
}

type slowChecker struct {
	status ports.HealthStatus
	delay  time.Duration
}

func (s slowChecker) Check(context.Context) ports.HealthStatus {
	time.Sleep(s.delay)
	return s.status
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{Units: "metric", Locale: "pt_br"},
		Spotify: config.SpotifyConfig{TargetPopularity: 70},
		Cache:   config.CacheConfig{Type: config.CacheTypeMemory, TTLSeconds: 600},
	}

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"weather":  NewProviderHealthChecker("weather", namedProvider("openweathermap")),
			"playlist": slowChecker{status: ports.HealthStatus{Component: "playlist", Status: statusHealthy}, delay: 10 * time.Millisecond},
			"skipped":  nil,
		},
		ConfigProvider: NewConfigProviderAdapter(cfg),
	})

	results := checker.CheckAll(context.Background())

	require.Len(t, results, 3)
	assert.Equal(t, statusHealthy, results["weather"].Status)
	assert.Equal(t, "playlist", results["playlist"].Component)
	assert.Equal(t, "memory", results["config"].Details["cacheType"])
	assert.Equal(t, "pt_br", results["config"].Details["locale"])
	assert.Equal(t, "10m0s", results["config"].Details["cacheTTL"])
	assert.True(t, Healthy(results))

	results["weather"] = ports.HealthStatus{Status: statusUnhealthy}
	assert.False(t, Healthy(results))
}
