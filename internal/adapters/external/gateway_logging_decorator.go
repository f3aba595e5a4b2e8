package external

import (
	"context"
	"strconv"
	"time"

	"prayertimes.app/internal/ports"
)

// TimingsGatewayLoggingDecorator decorates the timings gateway with structured logging
type TimingsGatewayLoggingDecorator struct {
	gateway ports.TimingsGateway
	name    string
	logger  ports.Logger
}

// NewTimingsGatewayLoggingDecorator creates a new logging decorator for the timings gateway
func NewTimingsGatewayLoggingDecorator(gateway ports.TimingsGateway, name string, logger ports.Logger) *TimingsGatewayLoggingDecorator {
	return &TimingsGatewayLoggingDecorator{
		gateway: gateway,
		name:    name,
		logger:  logger,
	}
}

// FetchTimings wraps the gateway call with structured logging
func (d *TimingsGatewayLoggingDecorator) FetchTimings(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
	position := describePosition(at)

	d.logger.Info("Timings API request started",
		ports.F("provider", d.name),
		ports.F("position", position),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.gateway.FetchTimings(ctx, at)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Timings API request failed",
			ports.F("provider", d.name),
			ports.F("position", position),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Timings API request completed",
		ports.F("provider", d.name),
		ports.F("position", position),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("prayers", len(data.Prayers)),
		ports.F("latitude", data.Latitude),
		ports.F("longitude", data.Longitude))

	return data, nil
}

// Name returns the name of the wrapped gateway with logging indication
func (d *TimingsGatewayLoggingDecorator) Name() string {
	return "logged(" + d.name + ")"
}

// GeocodingGatewayLoggingDecorator decorates the geocoding gateway with structured logging
type GeocodingGatewayLoggingDecorator struct {
	gateway ports.GeocodingGateway
	name    string
	logger  ports.Logger
}

// NewGeocodingGatewayLoggingDecorator creates a new logging decorator for the geocoding gateway
func NewGeocodingGatewayLoggingDecorator(gateway ports.GeocodingGateway, name string, logger ports.Logger) *GeocodingGatewayLoggingDecorator {
	return &GeocodingGatewayLoggingDecorator{
		gateway: gateway,
		name:    name,
		logger:  logger,
	}
}

// ReverseGeocode wraps the reverse lookup with structured logging
func (d *GeocodingGatewayLoggingDecorator) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	position := describePosition(&ports.Coordinates{Lat: lat, Lng: lon})

	d.logger.Info("Reverse geocoding request started",
		ports.F("provider", d.name),
		ports.F("position", position),
		ports.F("event", "request"))

	startTime := time.Now()
	label, err := d.gateway.ReverseGeocode(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Reverse geocoding request failed",
			ports.F("provider", d.name),
			ports.F("position", position),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return "", err
	}

	d.logger.Info("Reverse geocoding request completed",
		ports.F("provider", d.name),
		ports.F("position", position),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", label))

	return label, nil
}

// SearchAddress wraps the forward lookup with structured logging
func (d *GeocodingGatewayLoggingDecorator) SearchAddress(ctx context.Context, address string) (ports.Coordinates, error) {
	d.logger.Info("Address search request started",
		ports.F("provider", d.name),
		ports.F("address", address),
		ports.F("event", "request"))

	startTime := time.Now()
	position, err := d.gateway.SearchAddress(ctx, address)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Address search request failed",
			ports.F("provider", d.name),
			ports.F("address", address),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return ports.Coordinates{}, err
	}

	d.logger.Info("Address search request completed",
		ports.F("provider", d.name),
		ports.F("address", address),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("latitude", position.Lat),
		ports.F("longitude", position.Lng))

	return position, nil
}

// Name returns the name of the wrapped gateway with logging indication
func (d *GeocodingGatewayLoggingDecorator) Name() string {
	return "logged(" + d.name + ")"
}

func describePosition(at *ports.Coordinates) string {
	if at == nil {
		return "default"
	}
	return formatPosition(*at)
}

func formatPosition(c ports.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
