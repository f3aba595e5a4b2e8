package external

import (
	"context"
	"time"

	"prayertimes.app/internal/ports"
)

// Gateway names reported to the metrics collector
const (
	GatewayTimings        = "timings"
	GatewayReverseGeocode = "reverse_geocode"
	GatewaySearchAddress  = "search_address"
)

// InstrumentedTimingsGateway records call outcome and latency of the timings gateway
type InstrumentedTimingsGateway struct {
	gateway ports.TimingsGateway
	metrics ports.MetricsCollector
}

func NewInstrumentedTimingsGateway(gateway ports.TimingsGateway, metrics ports.MetricsCollector) *InstrumentedTimingsGateway {
	return &InstrumentedTimingsGateway{gateway: gateway, metrics: metrics}
}

func (g *InstrumentedTimingsGateway) FetchTimings(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
	start := time.Now()
	data, err := g.gateway.FetchTimings(ctx, at)
	g.metrics.RecordGatewayCall(GatewayTimings, err == nil, time.Since(start))
	return data, err
}

// InstrumentedGeocodingGateway records call outcome and latency of both geocoding directions
type InstrumentedGeocodingGateway struct {
	gateway ports.GeocodingGateway
	metrics ports.MetricsCollector
}

func NewInstrumentedGeocodingGateway(gateway ports.GeocodingGateway, metrics ports.MetricsCollector) *InstrumentedGeocodingGateway {
	return &InstrumentedGeocodingGateway{gateway: gateway, metrics: metrics}
}

func (g *InstrumentedGeocodingGateway) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	start := time.Now()
	label, err := g.gateway.ReverseGeocode(ctx, lat, lon)
	g.metrics.RecordGatewayCall(GatewayReverseGeocode, err == nil, time.Since(start))
	return label, err
}

func (g *InstrumentedGeocodingGateway) SearchAddress(ctx context.Context, address string) (ports.Coordinates, error) {
	start := time.Now()
	position, err := g.gateway.SearchAddress(ctx, address)
	g.metrics.RecordGatewayCall(GatewaySearchAddress, err == nil, time.Since(start))
	return position, err
}
