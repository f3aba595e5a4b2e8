package infrastructure

import (
	"time"

	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
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

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Host: c.config.Server.Host,
		Port: c.config.Server.Port,
	}
}

// GetLocationConfig returns the fallback location
func (c *ConfigProviderAdapter) GetLocationConfig() ports.LocationConfig {
	return ports.LocationConfig{
		Fallback: ports.Coordinates{
			Lat: c.config.Location.FallbackLatitude,
			Lng: c.config.Location.FallbackLongitude,
		},
	}
}

// GetGeocodingConfig returns geocoding configuration
func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		BaseURL:     c.config.Geocoding.BaseURL,
		EnableCache: c.config.Geocoding.EnableCache,
		CacheTTL:    time.Duration(c.config.Geocoding.CacheTTLMinutes) * time.Minute,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

// GetSessionConfig returns session store configuration
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		TTL: time.Duration(c.config.Session.TTLMinutes) * time.Minute,
	}
}
