package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherplaylist.app/internal/adapters/api"
	"weatherplaylist.app/internal/adapters/infrastructure"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/core/playlist"
	"weatherplaylist.app/internal/core/temperature"
	"weatherplaylist.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	temperatureUseCase *temperature.UseCase
	playlistUseCase    *playlist.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication wires every adapter from cfg using the default dependencies
func NewApplication(cfg *config.Config, opts DependencyOptions) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		if cleanupErr := deps.Cleanup(); cleanupErr != nil {
			slog.Warn("Cleanup after failed initialization", "error", cleanupErr)
		}
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	temperatureUseCase, err := temperature.NewUseCase(temperature.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.ComputeCache,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create temperature use case: %w", err)
	}
	a.temperatureUseCase = temperatureUseCase

	playlistUseCase, err := playlist.NewUseCase(playlist.UseCaseDependencies{
		Client: a.ports.RecommendationClient,
		Cache:  a.ports.ComputeCache,
		Config: a.ports.ConfigProvider,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create playlist use case: %w", err)
	}
	a.playlistUseCase = playlistUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	cacheType := a.config.Cache.Type.String()

	metricsReporter := infrastructure.NewMetricsReporterAdapter(infrastructure.MetricsReporterConfig{
		CacheType:    cacheType,
		CacheMetrics: a.ports.CacheMetrics,
		Collector:    a.deps.Metrics(),
		Providers: []string{
			a.ports.WeatherProvider.GetProviderName(),
			a.ports.RecommendationClient.GetProviderName(),
		},
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"cache":    infrastructure.NewCacheHealthChecker(a.ports.CacheProvider, cacheType),
			"weather":  infrastructure.NewProviderHealthChecker("weather", a.ports.WeatherProvider),
			"playlist": infrastructure.NewProviderHealthChecker("playlist", a.ports.RecommendationClient),
		},
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		TemperatureUseCase:  a.temperatureUseCase,
		PlaylistUseCase:     a.playlistUseCase,
		MetricsReporter:     metricsReporter,
		SystemHealthChecker: systemHealthChecker,
		Logger:              a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(_ context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests and releases the cache and log file handles
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing dependencies", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetTemperatureUseCase returns the temperature use case for testing
func (a *Application) GetTemperatureUseCase() *temperature.UseCase {
	return a.temperatureUseCase
}

// GetPlaylistUseCase returns the playlist use case for testing
func (a *Application) GetPlaylistUseCase() *playlist.UseCase {
	return a.playlistUseCase
}
