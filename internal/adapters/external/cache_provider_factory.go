package external

import (
	"fmt"

	"weatherplaylist.app/internal/config"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// CacheBackend is a cache provider that also tracks its own hit and miss counts
type CacheBackend interface {
	ports.CacheProvider
	ports.CacheMetrics
}

type CacheProviderFactory struct {
	memoryOptions []MemoryCacheOption
}

func NewCacheProviderFactory(memoryOptions ...MemoryCacheOption) *CacheProviderFactory {
	return &CacheProviderFactory{memoryOptions: memoryOptions}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (CacheBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(f.memoryOptions...), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
