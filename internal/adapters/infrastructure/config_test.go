package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
)

func TestConfigProviderAdapter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 9090},
		Weather: config.WeatherConfig{
			Units:  "imperial",
			Locale: "en",
		},
		Spotify: config.SpotifyConfig{
			RecommendationsURL: "https://api.spotify.com/v1/recommendations",
			TargetPopularity:   55,
		},
		Cache: config.CacheConfig{
			Type:       config.CacheTypeRedis,
			TTLSeconds: 120,
			Redis: config.RedisConfig{
				Addr:         "redis:6379",
				Password:     "secret",
				DB:           2,
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
				KeyPrefix:    "wp:",
			},
		},
	}
	adapter := NewConfigProviderAdapter(cfg)

	assert.Equal(t, ports.TemperatureConfig{
		Units:    "imperial",
		Locale:   "en",
		CacheTTL: 2 * time.Minute,
	}, adapter.GetTemperatureConfig())

	assert.Equal(t, ports.PlaylistConfig{
		RecommendationsURL: "https://api.spotify.com/v1/recommendations",
		TargetPopularity:   55,
		CacheTTL:           2 * time.Minute,
	}, adapter.GetPlaylistConfig())

	assert.Equal(t, ports.ServerConfig{Port: 9090}, adapter.GetServerConfig())

	cacheCfg := adapter.GetCacheConfig()
	assert.Equal(t, "redis", cacheCfg.Type)
	assert.Equal(t, ports.RedisConfig{
		Addr:         "redis:6379",
		Password:     "secret",
		DB:           2,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		KeyPrefix:    "wp:",
	}, cacheCfg.Redis)
}
