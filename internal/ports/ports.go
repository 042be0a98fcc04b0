package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Temperature
	WeatherProvider WeatherProvider

	// Playlist
	RecommendationClient RecommendationClient

	// Cache
	ComputeCache  ComputeCache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider   ConfigProvider
	Logger           Logger
	MetricsCollector MetricsCollector
}
