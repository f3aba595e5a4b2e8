package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/adapters/api"
	"prayertimes.app/internal/adapters/infrastructure"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/logger"
)

type Application struct {
	config *config.Config

	// Use Cases
	manager         *prayer.Manager
	settingsUseCase *settings.UseCase

	// Adapters
	httpAdapter *api.HTTPServerAdapter

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// NewApplication wires the application from cfg; base may be nil
func NewApplication(cfg *config.Config, base *logger.Logger) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, base)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	application, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return application, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		app.manager.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	fallback := a.ports.ConfigProvider.GetLocationConfig().Fallback
	locator := prayer.NewLocator(a.ports.Geolocator, fallback, a.ports.Logger)

	manager, err := prayer.NewManager(prayer.ManagerDependencies{
		Timings:  a.ports.TimingsGateway,
		Geocoder: a.ports.GeocodingGateway,
		Locator:  locator,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create prayer manager: %w", err)
	}
	a.manager = manager

	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Store:     a.ports.SessionStore,
		Geocoder:  a.ports.GeocodingGateway,
		Prayer:    manager,
		Timezones: a.ports.TimezoneDetector,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		manager.Close()
		return fmt.Errorf("create settings use case: %w", err)
	}
	a.settingsUseCase = settingsUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register timezone validator", "error", err)
	}

	geolocationProvider := a.config.Geolocation.Provider.String()
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"cache":       infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.deps.CacheProvider()),
			"prayer":      infrastructure.NewPrayerStateHealthChecker(a.manager),
			"geolocation": infrastructure.NewGeolocatorHealthChecker(geolocationProvider, a.ports.Geolocator),
		},
		ConfigProvider: a.ports.ConfigProvider,
	})

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Host: serverConfig.Host,
			Port: serverConfig.Port,
		},
		Prayer:           a.manager,
		SettingsUseCase:  a.settingsUseCase,
		Timezones:        a.ports.TimezoneDetector,
		HealthChecker:    systemHealthChecker,
		MetricsCollector: a.deps.MetricsCollector(),
		MetricsHandler:   a.deps.MetricsCollector().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpAdapter = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start mounts the prayer manager and serves HTTP until ctx is canceled
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.manager.Mount()

	if err := a.httpAdapter.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown stops in-flight cycles and releases the cache and log file
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	done := make(chan struct{})
	go func() {
		a.manager.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("shutdown prayer manager: %w", ctx.Err())
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpAdapter.GetRouter()
}

// Manager returns the prayer state manager
func (a *Application) Manager() *prayer.Manager {
	return a.manager
}

// TimezoneDetector returns the environment timezone detector
func (a *Application) TimezoneDetector() ports.TimezoneDetector {
	return a.ports.TimezoneDetector
}
