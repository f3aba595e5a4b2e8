// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/internal/ports"
	errorspkg "prayertimes.app/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	prayer           PrayerService
	settingsUseCase  SettingsUseCase
	timezones        ports.TimezoneDetector
	healthChecker    ports.SystemHealthChecker
	metricsCollector MetricsCollector
	metricsHandler   http.Handler
}

// PrayerService is the part of the prayer state manager the HTTP adapter drives
type PrayerService interface {
	Snapshot() prayer.State
	Refresh(lat, lng *float64) (*prayer.Cycle, bool)
	SetCords(cords ports.Coordinates)
	SetTimezone(timezone string)
}

type SettingsUseCase interface {
	Load(ctx context.Context) (settings.LocationSettings, error)
	Save(ctx context.Context, form settings.LocationSettings) error
	GeocodeAddress(ctx context.Context, form settings.LocationSettings) (settings.LocationSettings, error)
	Submit(ctx context.Context, form settings.LocationSettings) (*prayer.Cycle, error)
	TimezoneOptions() []string
	Theme(ctx context.Context) (bool, error)
	SetTheme(ctx context.Context, dark bool) error
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	Prayer           PrayerService
	SettingsUseCase  SettingsUseCase
	Timezones        ports.TimezoneDetector
	HealthChecker    ports.SystemHealthChecker
	MetricsCollector MetricsCollector
	// MetricsHandler serves /metrics; defaults to the global prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		prayer:           opts.Prayer,
		settingsUseCase:  opts.SettingsUseCase,
		timezones:        opts.Timezones,
		healthChecker:    opts.HealthChecker,
		metricsCollector: opts.MetricsCollector,
		metricsHandler:   metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Prayer == nil {
		return errorspkg.NewValidationError("prayer service is required")
	}
	if opts.SettingsUseCase == nil {
		return errorspkg.NewValidationError("settings use case is required")
	}
	if opts.Timezones == nil {
		return errorspkg.NewValidationError("timezone detector is required")
	}
	if opts.HealthChecker == nil {
		return errorspkg.NewValidationError("health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errorspkg.NewValidationError("metrics collector is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		prayerGroup := api.Group("/prayer")
		prayerGroup.GET("", s.getPrayer)
		prayerGroup.GET("/card", s.getCard)
		prayerGroup.POST("/refresh", s.refresh)
		prayerGroup.PUT("/cords", s.setCords)
		prayerGroup.PUT("/timezone", s.setTimezone)

		settingsGroup := api.Group("/settings")
		settingsGroup.GET("", s.getSettings)
		settingsGroup.PUT("", s.saveSettings)
		settingsGroup.POST("/geocode", s.geocodeAddress)
		settingsGroup.POST("/submit", s.submitSettings)
		settingsGroup.GET("/timezones", s.getTimezones)

		api.GET("/theme", s.getTheme)
		api.PUT("/theme", s.setTheme)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start serves HTTP until ctx is canceled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}
	return <-errCh
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
