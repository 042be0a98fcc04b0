// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router             *gin.Engine
	config             ServerConfig
	temperatureUseCase TemperatureUseCase
	playlistUseCase    PlaylistUseCase
	metricsReporter    MetricsReporter
	healthChecker      ports.SystemHealthChecker
	logger             ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type TemperatureUseCase interface {
	GetByCityName(ctx context.Context, cityName string) (float64, error)
	GetByLocation(ctx context.Context, latitude, longitude float64) (float64, error)
}

type PlaylistUseCase interface {
	GetPlaylistForGenre(ctx context.Context, genre string) ([]string, error)
}

type MetricsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	TemperatureUseCase  TemperatureUseCase
	PlaylistUseCase     PlaylistUseCase
	MetricsReporter     MetricsReporter
	SystemHealthChecker ports.SystemHealthChecker
	Logger              ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLoggingMiddleware(opts.Logger))

	server := &HTTPServerAdapter{
		router:             router,
		config:             opts.Config,
		temperatureUseCase: opts.TemperatureUseCase,
		playlistUseCase:    opts.PlaylistUseCase,
		metricsReporter:    opts.MetricsReporter,
		healthChecker:      opts.SystemHealthChecker,
		logger:             opts.Logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.TemperatureUseCase == nil {
		return errors.NewValidationError("temperature use case is required")
	}
	if opts.PlaylistUseCase == nil {
		return errors.NewValidationError("playlist use case is required")
	}
	if opts.MetricsReporter == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/temperature", s.getTemperature)
		api.POST("/temperature", s.postTemperature)
		api.GET("/playlist", s.getPlaylist)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router so the application can mount it on an http.Server
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request structs
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}
