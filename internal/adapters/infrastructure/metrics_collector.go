package infrastructure

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"prayertimes.app/internal/ports"
)

const metricsNamespace = "prayertimes"

// PrometheusMetricsCollector implements the MetricsCollector port on a dedicated registry
// and keeps running totals for the JSON metrics endpoint
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cycles        *prometheus.CounterVec
	cycleDuration *prometheus.HistogramVec
	gatewayCalls  *prometheus.HistogramVec
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	cacheHitRatio *prometheus.GaugeVec

	mu       sync.RWMutex
	outcomes map[string]int64
	gateways map[string]*gatewayTotals
	caches   map[string]*cacheTotals
	cacheSrc ports.CacheMetrics
}

type gatewayTotals struct {
	Calls     int64   `json:"calls"`
	Failures  int64   `json:"failures"`
	AverageMS float64 `json:"average_ms"`
	totalMS   float64
}

type cacheTotals struct {
	Hits     int64   `json:"hits"`
	Misses   int64   `json:"misses"`
	HitRatio float64 `json:"hit_ratio"`
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	// CacheMetrics reports the raw cache provider counters; optional
	CacheMetrics ports.CacheMetrics
	// IncludeRuntime registers Go runtime and process collectors
	IncludeRuntime bool
}

// NewPrometheusMetricsCollector creates a collector with its own registry
func NewPrometheusMetricsCollector(cfg MetricsCollectorConfig) *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetricsCollector{
		registry: registry,
		cycles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cycles_total",
				Help:      "The total number of finished prayer fetch cycles by outcome",
			},
			[]string{"outcome"},
		),
		cycleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cycle_duration_seconds",
				Help:      "Prayer fetch cycle duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		gatewayCalls: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "gateway_request_duration_seconds",
				Help:      "Remote gateway request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"gateway", "result"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "The total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "The total number of cache misses",
			},
			[]string{"cache"},
		),
		cacheHitRatio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/total requests)",
			},
			[]string{"cache"},
		),
		outcomes: make(map[string]int64),
		gateways: make(map[string]*gatewayTotals),
		caches:   make(map[string]*cacheTotals),
		cacheSrc: cfg.CacheMetrics,
	}

	registry.MustRegister(m.cycles, m.cycleDuration, m.gatewayCalls, m.cacheHits, m.cacheMisses, m.cacheHitRatio)
	if cfg.IncludeRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// RecordCycle counts a finished cycle and observes its duration
func (m *PrometheusMetricsCollector) RecordCycle(outcome string, duration time.Duration) {
	m.cycles.WithLabelValues(outcome).Inc()
	m.cycleDuration.WithLabelValues(outcome).Observe(duration.Seconds())

	m.mu.Lock()
	m.outcomes[outcome]++
	m.mu.Unlock()
}

// RecordGatewayCall observes one remote request
func (m *PrometheusMetricsCollector) RecordGatewayCall(gateway string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.gatewayCalls.WithLabelValues(gateway, result).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	totals, ok := m.gateways[gateway]
	if !ok {
		totals = &gatewayTotals{}
		m.gateways[gateway] = totals
	}
	totals.Calls++
	if !success {
		totals.Failures++
	}
	totals.totalMS += float64(duration) / float64(time.Millisecond)
	totals.AverageMS = totals.totalMS / float64(totals.Calls)
}

func (m *PrometheusMetricsCollector) RecordCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
	m.recordCache(cache, true)
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
	m.recordCache(cache, false)
}

func (m *PrometheusMetricsCollector) recordCache(cache string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	totals, ok := m.caches[cache]
	if !ok {
		totals = &cacheTotals{}
		m.caches[cache] = totals
	}
	if hit {
		totals.Hits++
	} else {
		totals.Misses++
	}
	totals.HitRatio = float64(totals.Hits) / float64(totals.Hits+totals.Misses)
	m.cacheHitRatio.WithLabelValues(cache).Set(totals.HitRatio)
}

// GetMetrics returns a JSON-friendly summary of everything recorded so far
func (m *PrometheusMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outcomes := make(map[string]int64, len(m.outcomes))
	for outcome, count := range m.outcomes {
		outcomes[outcome] = count
	}
	gateways := make(map[string]gatewayTotals, len(m.gateways))
	for name, totals := range m.gateways {
		gateways[name] = *totals
	}
	caches := make(map[string]cacheTotals, len(m.caches))
	for name, totals := range m.caches {
		caches[name] = *totals
	}

	metrics := map[string]interface{}{
		"cycles":   outcomes,
		"gateways": gateways,
		"caches":   caches,
	}

	if m.cacheSrc != nil {
		stats := m.cacheSrc.GetStats()
		metrics["cache_provider"] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	return metrics, nil
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
