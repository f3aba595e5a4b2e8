package infrastructure

import (
	"context"

	"prayertimes.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		server := s.configProvider.GetServerConfig()
		location := s.configProvider.GetLocationConfig()
		cache := s.configProvider.GetCacheConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details: map[string]interface{}{
				"host":              server.Host,
				"port":              server.Port,
				"cacheType":         cache.Type,
				"fallbackLatitude":  location.Fallback.Lat,
				"fallbackLongitude": location.Fallback.Lng,
			},
		}
	}

	return results
}

// Overall folds component statuses into one: unhealthy beats degraded beats healthy
func Overall(results map[string]ports.HealthStatus) string {
	overall := StatusHealthy
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			return StatusUnhealthy
		case StatusDegraded, StatusStarting:
			overall = StatusDegraded
		}
	}
	return overall
}
