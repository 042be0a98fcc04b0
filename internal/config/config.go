package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherplaylist.app/pkg/errors"
)

const (
	maxRedisDB         = 15
	maxCacheTTLSeconds = 86400
	maxPortNumber      = 65535
	maxPopularity      = 100
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig  `split_words:"true"`
	Weather  WeatherConfig `split_words:"true"`
	Spotify  SpotifyConfig `split_words:"true"`
	Cache    CacheConfig   `split_words:"true"`
	LogLevel string        `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string  `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	OpenWeatherMapBaseURL string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	Units                 string  `envconfig:"WEATHER_UNITS" default:"metric"`
	Locale                string  `envconfig:"WEATHER_LOCALE" default:"pt_br"`
	RateLimitRPS          float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst        int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"5"`
	EnableLogging         bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string  `envconfig:"WEATHER_LOG_FILE_PATH" default:""`
}

type SpotifyConfig struct {
	ClientID           string  `envconfig:"SPOTIFY_CLIENT_ID" required:"true"`
	ClientSecret       string  `envconfig:"SPOTIFY_CLIENT_SECRET" required:"true"`
	TokenURL           string  `envconfig:"SPOTIFY_TOKEN_URL" default:"https://accounts.spotify.com/api/token"`
	RecommendationsURL string  `envconfig:"SPOTIFY_RECOMMENDATIONS_URL" default:"https://api.spotify.com/v1/recommendations"`
	TargetPopularity   int     `envconfig:"SPOTIFY_TARGET_POPULARITY" default:"70"`
	RateLimitRPS       float64 `envconfig:"SPOTIFY_RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst     int     `envconfig:"SPOTIFY_RATE_LIMIT_BURST" default:"5"`
	EnableLogging      bool    `envconfig:"SPOTIFY_ENABLE_LOGGING" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	TTLSeconds int         `envconfig:"CACHE_TTL_SECONDS" default:"600"`
	Redis      RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherplaylist:"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Spotify.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	if !isHTTPURL(w.OpenWeatherMapBaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}

	validUnits := []string{"standard", "metric", "imperial"}
	if !contains(validUnits, w.Units) {
		return errors.NewConfigurationError(
			fmt.Sprintf("WEATHER_UNITS must be one of: %s", strings.Join(validUnits, ", ")), nil)
	}
	if w.Locale == "" {
		return errors.NewConfigurationError("WEATHER_LOCALE cannot be empty", nil)
	}
	if w.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be positive", nil)
	}
	if w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	return nil
}

func (s *SpotifyConfig) Validate() error {
	if s.ClientID == "" || s.ClientSecret == "" {
		return errors.NewConfigurationError("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must both be provided", nil)
	}
	if !isHTTPURL(s.TokenURL) {
		return errors.NewConfigurationError("SPOTIFY_TOKEN_URL must start with http:// or https://", nil)
	}
	if !isHTTPURL(s.RecommendationsURL) {
		return errors.NewConfigurationError("SPOTIFY_RECOMMENDATIONS_URL must start with http:// or https://", nil)
	}
	if s.TargetPopularity < 0 || s.TargetPopularity > maxPopularity {
		return errors.NewConfigurationError("SPOTIFY_TARGET_POPULARITY must be between 0 and 100", nil)
	}
	if s.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("SPOTIFY_RATE_LIMIT_RPS must be positive", nil)
	}
	if s.RateLimitBurst < 1 {
		return errors.NewConfigurationError("SPOTIFY_RATE_LIMIT_BURST must be at least 1", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.TTLSeconds < 1 || c.TTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("CACHE_TTL_SECONDS must be between 1 and 86400 seconds", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func isHTTPURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
