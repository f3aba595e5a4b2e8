package external

import (
	"fmt"

	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// CacheKeyPrefix namespaces every key this application writes to a shared cache
const CacheKeyPrefix = "prayertimes:"

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(CacheKeyPrefix), nil
	case config.CacheTypeRedis:
		return NewRedisCacheProviderAdapter(&cfg.Redis, CacheKeyPrefix)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
