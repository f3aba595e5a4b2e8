package infrastructure

import (
	"context"
	"time"

	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
)

// Health status values reported by the checkers
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusStarting  = "starting"
	StatusUnhealthy = "unhealthy"
)

const cachePingTimeout = 2 * time.Second

// Pinger is implemented by cache providers backed by a remote server
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports cache availability
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

// Check pings the cache when it supports it
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = StatusUnhealthy
		status.Error = "cache provider is not available"
		return status
	}

	pinger, ok := c.cache.(Pinger)
	if !ok {
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := pinger.Ping(pingCtx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// StateSource exposes the current prayer state
type StateSource interface {
	Snapshot() prayer.State
}

// PrayerStateHealthChecker reports whether timings have been loaded
type PrayerStateHealthChecker struct {
	source StateSource
}

// NewPrayerStateHealthChecker creates a new prayer state health checker
func NewPrayerStateHealthChecker(source StateSource) *PrayerStateHealthChecker {
	return &PrayerStateHealthChecker{source: source}
}

// Check derives the status from the latest committed cycle
func (p *PrayerStateHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	state := p.source.Snapshot()

	status := ports.HealthStatus{
		Component: "prayer",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"loading":  state.Loading,
			"outcome":  string(state.Outcome),
			"location": state.Location,
			"cycle":    state.CycleID,
		},
	}

	switch {
	case state.HasError():
		status.Status = StatusDegraded
		status.Error = string(state.Outcome)
	case state.Today == nil:
		status.Status = StatusStarting
	}
	return status
}

// GeolocatorHealthChecker reports the configured geolocation capability
type GeolocatorHealthChecker struct {
	provider   string
	geolocator ports.Geolocator
}

// NewGeolocatorHealthChecker creates a new geolocator health checker; geolocator may be nil
func NewGeolocatorHealthChecker(provider string, geolocator ports.Geolocator) *GeolocatorHealthChecker {
	return &GeolocatorHealthChecker{provider: provider, geolocator: geolocator}
}

// Check never calls the geolocator; an absent capability is reported but healthy
func (g *GeolocatorHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "geolocation",
		Status:    StatusHealthy,
		Details: map[string]interface{}{
			"provider":  g.provider,
			"available": g.geolocator != nil,
		},
	}
	if g.geolocator != nil {
		status.Details["name"] = g.geolocator.Name()
	}
	return status
}
