package infrastructure

import (
	"time"

	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetTemperatureConfig returns the OpenWeatherMap query settings and the lookup cache lifetime
func (c *ConfigProviderAdapter) GetTemperatureConfig() ports.TemperatureConfig {
	return ports.TemperatureConfig{
		Units:    c.config.Weather.Units,
		Locale:   c.config.Weather.Locale,
		CacheTTL: c.cacheTTL(),
	}
}

// GetPlaylistConfig returns the Spotify recommendation settings
func (c *ConfigProviderAdapter) GetPlaylistConfig() ports.PlaylistConfig {
	return ports.PlaylistConfig{
		RecommendationsURL: c.config.Spotify.RecommendationsURL,
		TargetPopularity:   c.config.Spotify.TargetPopularity,
		CacheTTL:           c.cacheTTL(),
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	redis := c.config.Cache.Redis
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         redis.Addr,
			Password:     redis.Password,
			DB:           redis.DB,
			DialTimeout:  redis.DialTimeout,
			ReadTimeout:  redis.ReadTimeout,
			WriteTimeout: redis.WriteTimeout,
			KeyPrefix:    redis.KeyPrefix,
		},
	}
}

func (c *ConfigProviderAdapter) cacheTTL() time.Duration {
	return time.Duration(c.config.Cache.TTLSeconds) * time.Second
}
