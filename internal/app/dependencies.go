package app

import (
	"io"
	"log/slog"
	"net/http"

	"weatherplaylist.app/internal/adapters/external"
	"weatherplaylist.app/internal/adapters/infrastructure"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// DependencyContainer builds and owns the adapters behind every port
type DependencyContainer struct {
	config     *config.Config
	options    DependencyOptions
	backend    external.CacheBackend
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides pieces of the default wiring
type DependencyOptions struct {
	// Logger receives application logs. Defaults to the slog default logger.
	Logger ports.Logger
	// Metrics defaults to the collector registered with the global Prometheus registry.
	Metrics *infrastructure.PrometheusMetricsCollector
	// HTTPClient carries OpenWeatherMap and Spotify requests.
	HTTPClient *http.Client
	// MemoryOptions configure the in-memory cache backend.
	MemoryOptions []external.MemoryCacheOption
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("config is required", nil)
	}
	if opts.Logger == nil {
		opts.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	}
	if opts.Metrics == nil {
		opts.Metrics = infrastructure.DefaultPrometheusMetricsCollector()
	}

	container := &DependencyContainer{
		config:  cfg,
		options: opts,
	}

	if err := container.initializePorts(); err != nil {
		if cleanupErr := container.Cleanup(); cleanupErr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
		}
		return nil, err
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := c.options.Logger
	metrics := c.options.Metrics

	backend, err := external.NewCacheProviderFactory(c.options.MemoryOptions...).CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return err
	}
	c.backend = backend

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	computeCache, err := external.NewComputeCacheAdapter(external.ComputeCacheParams{
		Provider:     backend,
		CacheMetrics: backend,
		Metrics:      metrics,
		CacheType:    c.config.Cache.Type.String(),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	providerLogger := c.providerLogger(logger)

	weatherParams := external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Logger:  logger,
	}
	if c.options.HTTPClient != nil {
		weatherParams.Client = c.options.HTTPClient
	}

	weatherProvider := external.NewOpenWeatherMapProviderAdapter(weatherParams)
	weatherProvider = external.NewRateLimitedWeatherProvider(weatherProvider, c.config.Weather.RateLimitRPS, c.config.Weather.RateLimitBurst)
	weatherProvider = external.NewInstrumentedWeatherProvider(weatherProvider, metrics)
	if c.config.Weather.EnableLogging {
		weatherProvider = external.NewWeatherProviderLoggingDecorator(weatherProvider, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	recommendationClient := external.NewSpotifyClientAdapter(external.SpotifyClientParams{
		ClientID:     c.config.Spotify.ClientID,
		ClientSecret: c.config.Spotify.ClientSecret,
		TokenURL:     c.config.Spotify.TokenURL,
		BaseClient:   c.options.HTTPClient,
		Logger:       logger,
	})
	recommendationClient = external.NewRateLimitedRecommendationClient(recommendationClient, c.config.Spotify.RateLimitRPS, c.config.Spotify.RateLimitBurst)
	recommendationClient = external.NewInstrumentedRecommendationClient(recommendationClient, metrics)
	if c.config.Spotify.EnableLogging {
		recommendationClient = external.NewRecommendationClientLoggingDecorator(recommendationClient, providerLogger)
		slog.Info("Recommendation client logging enabled")
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider:      weatherProvider,
		RecommendationClient: recommendationClient,

		ComputeCache:  computeCache,
		CacheProvider: backend,
		CacheMetrics:  backend,

		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           logger,
		MetricsCollector: metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// providerLogger sends upstream request logs to WEATHER_LOG_FILE_PATH when it is set
func (c *DependencyContainer) providerLogger(fallback ports.Logger) ports.Logger {
	path := c.config.Weather.LogFilePath
	if path == "" {
		return fallback
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(path)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return fallback
	}

	c.fileLogger = fileLogger
	slog.Info("Provider file logging enabled", "path", path)
	return fileLogger
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the collector shared by the cache and provider decorators
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.options.Metrics
}

// Cleanup releases the cache backend connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if closer, ok := c.backend.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			firstErr = err
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
