package infrastructure

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherplaylist.app/internal/ports"
)

const metricsNamespace = "weatherplaylist"

// ProviderCallStats summarizes calls made to one upstream API
type ProviderCallStats struct {
	Calls         int64   `json:"calls"`
	Failures      int64   `json:"failures"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	totalDuration time.Duration
}

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus vectors.
// It also keeps per-provider totals so they can be reported as JSON.
type PrometheusMetricsCollector struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	cacheLatency  *prometheus.HistogramVec
	hitRatio      *prometheus.GaugeVec
	providerCalls *prometheus.CounterVec
	providerTime  *prometheus.HistogramVec

	mu        sync.Mutex
	lookups   map[string][2]int64
	providers map[string]*ProviderCallStats
}

var (
	defaultCollector     *PrometheusMetricsCollector
	defaultCollectorOnce sync.Once
)

// DefaultPrometheusMetricsCollector returns the collector registered with the global Prometheus registry.
// Vectors can only be registered once per registry, so every caller shares one instance.
func DefaultPrometheusMetricsCollector() *PrometheusMetricsCollector {
	defaultCollectorOnce.Do(func() {
		defaultCollector = NewPrometheusMetricsCollector(prometheus.DefaultRegisterer)
	})
	return defaultCollector
}

// NewPrometheusMetricsCollector registers the application vectors with reg
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "The total number of cache hits",
			},
			[]string{"cache_type"},
		),
		misses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "The total number of cache misses",
			},
			[]string{"cache_type"},
		),
		cacheLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cache_duration_seconds",
				Help:      "Cache operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		hitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_calls_total",
				Help:      "Calls made to upstream APIs by outcome",
			},
			[]string{"provider", "outcome"},
		),
		providerTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "provider_call_duration_seconds",
				Help:      "Upstream API call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		lookups:   make(map[string][2]int64),
		providers: make(map[string]*ProviderCallStats),
	}
}

// RecordCacheHit counts a lookup served from cache
func (m *PrometheusMetricsCollector) RecordCacheHit(_ context.Context, cacheType string) {
	m.hits.WithLabelValues(cacheType).Inc()
	m.recordLookup(cacheType, true)
}

// RecordCacheMiss counts a lookup that had to be computed
func (m *PrometheusMetricsCollector) RecordCacheMiss(_ context.Context, cacheType string) {
	m.misses.WithLabelValues(cacheType).Inc()
	m.recordLookup(cacheType, false)
}

// RecordCacheLatency observes a backend get or set
func (m *PrometheusMetricsCollector) RecordCacheLatency(_ context.Context, cacheType, operation string, duration time.Duration) {
	m.cacheLatency.WithLabelValues(cacheType, operation).Observe(duration.Seconds())
}

// RecordProviderCall counts an upstream call and observes its duration
func (m *PrometheusMetricsCollector) RecordProviderCall(_ context.Context, provider string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerCalls.WithLabelValues(provider, outcome).Inc()
	m.providerTime.WithLabelValues(provider).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	stats, ok := m.providers[provider]
	if !ok {
		stats = &ProviderCallStats{}
		m.providers[provider] = stats
	}
	stats.Calls++
	if !success {
		stats.Failures++
	}
	stats.totalDuration += duration
	stats.AvgDurationMs = float64(stats.totalDuration.Microseconds()) / 1000 / float64(stats.Calls)
}

// ProviderStats returns a copy of the per-provider totals
func (m *PrometheusMetricsCollector) ProviderStats() map[string]ProviderCallStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]ProviderCallStats, len(m.providers))
	for name, stats := range m.providers {
		out[name] = *stats
	}
	return out
}

// recordLookup updates the hit ratio gauge. Index 0 holds hits, index 1 the total.
func (m *PrometheusMetricsCollector) recordLookup(cacheType string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := m.lookups[cacheType]
	if hit {
		counts[0]++
	}
	counts[1]++
	m.lookups[cacheType] = counts

	m.hitRatio.WithLabelValues(cacheType).Set(float64(counts[0]) / float64(counts[1]))
}

// MetricsReporterAdapter assembles the JSON document served on /api/metrics
type MetricsReporterAdapter struct {
	cacheType    string
	cacheMetrics ports.CacheMetrics
	collector    *PrometheusMetricsCollector
	providers    []string
}

// MetricsReporterConfig holds configuration for creating the metrics reporter
type MetricsReporterConfig struct {
	CacheType    string
	CacheMetrics ports.CacheMetrics
	Collector    *PrometheusMetricsCollector
	Providers    []string
}

// NewMetricsReporterAdapter creates a new metrics reporter
func NewMetricsReporterAdapter(config MetricsReporterConfig) *MetricsReporterAdapter {
	providers := append([]string(nil), config.Providers...)
	sort.Strings(providers)

	return &MetricsReporterAdapter{
		cacheType:    config.CacheType,
		cacheMetrics: config.CacheMetrics,
		collector:    config.Collector,
		providers:    providers,
	}
}

// GetMetrics returns cache backend statistics and upstream call totals
func (m *MetricsReporterAdapter) GetMetrics(_ context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"providers": m.providers,
	}

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"type":       m.cacheType,
			"hits":       stats.Hits,
			"misses":     stats.Misses,
			"total_ops":  stats.TotalOps,
			"hit_ratio":  stats.HitRatio,
			"operations": operationSummaries(stats.Operations),
			"updated":    stats.LastUpdated,
		}
	}

	if m.collector != nil {
		metrics["provider_calls"] = m.collector.ProviderStats()
	}

	return metrics, nil
}

// CacheOperationSummary is the JSON view of one backend operation's timings
type CacheOperationSummary struct {
	Count         int64   `json:"count"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

func operationSummaries(operations map[string]ports.CacheOperationStats) map[string]CacheOperationSummary {
	summaries := make(map[string]CacheOperationSummary, len(operations))
	for name, op := range operations {
		summaries[name] = CacheOperationSummary{
			Count:         op.Count,
			AvgDurationMs: float64(op.AvgDuration) / float64(time.Millisecond),
		}
	}
	return summaries
}
