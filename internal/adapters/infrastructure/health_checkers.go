package infrastructure

import (
	"context"
	"time"

	"weatherplaylist.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	healthProbeKey = "healthcheck-probe"
)

// CacheHealthChecker probes the cache backend with an existence check
type CacheHealthChecker struct {
	cache     ports.CacheProvider
	cacheType string
	timeout   time.Duration
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache ports.CacheProvider, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{
		cache:     cache,
		cacheType: cacheType,
		timeout:   2 * time.Second,
	}
}

// Check verifies the cache backend answers
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = statusUnhealthy
		status.Error = "cache backend is not configured"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if _, err := c.cache.Exists(ctx, healthProbeKey); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	status.Details["latency_ms"] = time.Since(start).Milliseconds()

	return status
}

// NamedProvider is any upstream adapter that reports its name
type NamedProvider interface {
	GetProviderName() string
}

// ProviderHealthChecker reports whether an upstream adapter is wired
type ProviderHealthChecker struct {
	component string
	provider  NamedProvider
}

// NewProviderHealthChecker creates a checker reporting under component
func NewProviderHealthChecker(component string, provider NamedProvider) *ProviderHealthChecker {
	return &ProviderHealthChecker{component: component, provider: provider}
}

// Check reports the provider name. Upstream APIs are not called.
func (p *ProviderHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"configured": true,
		},
	}

	if p.provider == nil {
		status.Status = statusUnhealthy
		status.Error = p.component + " provider is not available"
		status.Details["configured"] = false
		return status
	}

	status.Details["provider"] = p.provider.GetProviderName()
	return status
}
