package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"prayertimes.app/internal/adapters/external"
	"prayertimes.app/internal/adapters/infrastructure"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	base    *logger.Logger
	ports   *ports.ApplicationPorts
	cache   ports.CacheProvider
	metrics *infrastructure.PrometheusMetricsCollector
	closers []io.Closer
}

// NewDependencyContainer builds every port implementation from configuration; base may be nil
func NewDependencyContainer(cfg *config.Config, base *logger.Logger) (*DependencyContainer, error) {
	if base == nil {
		base = logger.New()
	}
	container := &DependencyContainer{
		config: cfg,
		base:   base,
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := infrastructure.NewSlogLoggerAdapter(c.base)

	cacheFactory := external.NewCacheProviderFactory()
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheProvider
	if closer, ok := cacheProvider.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	cacheStats, _ := cacheProvider.(ports.CacheMetrics)
	c.metrics = infrastructure.NewPrometheusMetricsCollector(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   cacheStats,
		IncludeRuntime: true,
	})

	sessionStore, err := external.NewSessionStoreAdapter(external.SessionStoreParams{
		Cache: cacheProvider,
		TTL:   time.Duration(c.config.Session.TTLMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	slog.Info("Session store initialized", "session", sessionStore.SessionID())

	gatewayLogger, err := c.gatewayLogger(appLogger)
	if err != nil {
		return err
	}

	timings, geocoder, err := c.gateways(cacheProvider, gatewayLogger, appLogger)
	if err != nil {
		return err
	}

	geolocator := c.geolocator(appLogger)

	c.ports = &ports.ApplicationPorts{
		TimingsGateway:   timings,
		GeocodingGateway: geocoder,

		Geolocator:       geolocator,
		TimezoneDetector: infrastructure.NewSystemTimezoneDetector(settings.FallbackTimezones),

		SessionStore: sessionStore,
		CacheStats:   cacheStats,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
		Metrics:        c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// gatewayLogger returns the logger used by the gateway decorators, or nil when disabled
func (c *DependencyContainer) gatewayLogger(appLogger ports.Logger) (ports.Logger, error) {
	cfg := c.config.Logging
	if !cfg.EnableGatewayLogging {
		return nil, nil
	}
	if cfg.GatewayLogFilePath == "" {
		return appLogger, nil
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(cfg.GatewayLogFilePath)
	if err != nil {
		slog.Warn("Failed to create gateway file logger, falling back to slog", "error", err)
		return appLogger, nil
	}
	c.closers = append(c.closers, fileLogger)
	slog.Info("Gateway file logging enabled", "path", fileLogger.Path())

	return infrastructure.NewMultiLogger(appLogger, fileLogger), nil
}

// gateways wraps each remote adapter: metrics innermost, then logging, then the geocode cache
func (c *DependencyContainer) gateways(cache ports.CacheProvider, gatewayLogger, appLogger ports.Logger) (ports.TimingsGateway, ports.GeocodingGateway, error) {
	timingsAdapter := external.NewTimingsGatewayAdapter(external.TimingsGatewayParams{
		BaseURL: c.config.Timings.BaseURL,
		Timeout: time.Duration(c.config.Timings.TimeoutSeconds) * time.Second,
		Logger:  appLogger,
	})
	var timings ports.TimingsGateway = external.NewInstrumentedTimingsGateway(timingsAdapter, c.metrics)

	nominatim := external.NewNominatimGeocodingAdapter(external.NominatimGeocodingParams{
		BaseURL:   c.config.Geocoding.BaseURL,
		UserAgent: c.config.Geocoding.UserAgent,
		Timeout:   time.Duration(c.config.Geocoding.TimeoutSeconds) * time.Second,
		Logger:    appLogger,
	})
	var geocoder ports.GeocodingGateway = external.NewInstrumentedGeocodingGateway(nominatim, c.metrics)

	if gatewayLogger != nil {
		timings = external.NewTimingsGatewayLoggingDecorator(timings, timingsAdapter.Name(), gatewayLogger)
		geocoder = external.NewGeocodingGatewayLoggingDecorator(geocoder, nominatim.Name(), gatewayLogger)
		slog.Info("Gateway logging enabled")
	}

	if c.config.Geocoding.EnableCache {
		cached, err := external.NewCachedGeocodingAdapter(external.CachedGeocodingParams{
			Gateway: geocoder,
			Cache:   cache,
			TTL:     time.Duration(c.config.Geocoding.CacheTTLMinutes) * time.Minute,
			Logger:  appLogger,
			Metrics: c.metrics,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create geocode cache: %w", err)
		}
		geocoder = cached
		slog.Info("Geocode cache enabled", "ttl_minutes", c.config.Geocoding.CacheTTLMinutes)
	}

	return timings, geocoder, nil
}

func (c *DependencyContainer) geolocator(appLogger ports.Logger) ports.Geolocator {
	cfg := c.config.Geolocation

	switch cfg.Provider {
	case config.GeolocationProviderIP:
		return external.NewIPGeolocationAdapter(external.IPGeolocationParams{
			BaseURL: cfg.IPBaseURL,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			Logger:  appLogger,
		})
	case config.GeolocationProviderStatic:
		lat, lng, _ := cfg.DevicePosition()
		return external.NewStaticGeolocationAdapter(ports.Coordinates{Lat: lat, Lng: lng})
	default:
		slog.Info("Geolocation disabled, fallback location will be used")
		return nil
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// CacheProvider returns the shared cache behind the session store and geocode cache
func (c *DependencyContainer) CacheProvider() ports.CacheProvider {
	return c.cache
}

// MetricsCollector returns the prometheus-backed collector
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes the redis client and gateway log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
