package ports

import (
	"context"
	"time"
)

// TemperatureConfig represents temperature lookup configuration
type TemperatureConfig struct {
	Units    string
	Locale   string
	CacheTTL time.Duration
}

// PlaylistConfig represents playlist lookup configuration
type PlaylistConfig struct {
	RecommendationsURL string
	TargetPopularity   int
	CacheTTL           time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
	KeyPrefix    string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetTemperatureConfig() TemperatureConfig
	GetPlaylistConfig() PlaylistConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cacheType string)
	RecordCacheMiss(ctx context.Context, cacheType string)
	RecordCacheLatency(ctx context.Context, cacheType, operation string, duration time.Duration)
	RecordProviderCall(ctx context.Context, provider string, success bool, duration time.Duration)
}
