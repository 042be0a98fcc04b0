package infrastructure

import (
	"context"
	"sync"

	"weatherplaylist.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every registered check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	if s.configProvider != nil {
		temperature := s.configProvider.GetTemperatureConfig()
		playlist := s.configProvider.GetPlaylistConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"cacheType":        s.configProvider.GetCacheConfig().Type,
				"units":            temperature.Units,
				"locale":           temperature.Locale,
				"cacheTTL":         temperature.CacheTTL.String(),
				"targetPopularity": playlist.TargetPopularity,
			},
		}
	}

	return results
}

// Healthy reports whether every status in results is healthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
