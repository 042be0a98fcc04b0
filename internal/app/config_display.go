package app

import (
	"strings"

	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
)

// ConfigDisplayer logs the effective configuration with credentials masked
type ConfigDisplayer struct {
	logger ports.Logger
}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer(logger ports.Logger) *ConfigDisplayer {
	return &ConfigDisplayer{logger: logger}
}

// LogConfig writes one debug entry per configuration section
func (cd *ConfigDisplayer) LogConfig(cfg *config.Config) {
	cd.logger.Debug("Server configuration",
		ports.F("port", cfg.Server.Port),
		ports.F("log_level", cfg.LogLevel))

	cd.logger.Debug("Weather configuration",
		ports.F("api_key", MaskSecret(cfg.Weather.OpenWeatherMapKey)),
		ports.F("base_url", cfg.Weather.OpenWeatherMapBaseURL),
		ports.F("units", cfg.Weather.Units),
		ports.F("locale", cfg.Weather.Locale),
		ports.F("rate_limit_rps", cfg.Weather.RateLimitRPS),
		ports.F("log_file", cfg.Weather.LogFilePath))

	cd.logger.Debug("Spotify configuration",
		ports.F("client_id", MaskSecret(cfg.Spotify.ClientID)),
		ports.F("client_secret", MaskSecret(cfg.Spotify.ClientSecret)),
		ports.F("token_url", cfg.Spotify.TokenURL),
		ports.F("recommendations_url", cfg.Spotify.RecommendationsURL),
		ports.F("target_popularity", cfg.Spotify.TargetPopularity))

	fields := []ports.Field{
		ports.F("type", cfg.Cache.Type.String()),
		ports.F("ttl_seconds", cfg.Cache.TTLSeconds),
	}
	if cfg.Cache.Type == config.CacheTypeRedis {
		fields = append(fields,
			ports.F("redis_addr", cfg.Cache.Redis.Addr),
			ports.F("redis_db", cfg.Cache.Redis.DB),
			ports.F("redis_password", MaskSecret(cfg.Cache.Redis.Password)),
			ports.F("redis_key_prefix", cfg.Cache.Redis.KeyPrefix))
	}
	cd.logger.Debug("Cache configuration", fields...)
}

// MaskSecret keeps the first quarter of s visible. Short values are fully masked.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}
