package prayer

import (
	"context"

	"prayertimes.app/internal/ports"
)

// Locator acquires the device position, falling back to a fixed location
type Locator struct {
	geolocator ports.Geolocator
	fallback   ports.Coordinates
	logger     ports.Logger
}

// NewLocator creates a locator; a nil geolocator means the capability is absent
func NewLocator(geolocator ports.Geolocator, fallback ports.Coordinates, logger ports.Logger) *Locator {
	return &Locator{
		geolocator: geolocator,
		fallback:   fallback,
		logger:     logger,
	}
}

// Acquire never fails: denial and errors resolve to the fallback location
func (l *Locator) Acquire(ctx context.Context) ports.Coordinates {
	if l.geolocator == nil {
		l.logger.Debug("Geolocation unavailable, using fallback location",
			ports.F("lat", l.fallback.Lat),
			ports.F("lng", l.fallback.Lng))
		return l.fallback
	}

	position, err := l.geolocator.CurrentPosition(ctx)
	if err != nil {
		l.logger.Warn("Unable to retrieve location",
			ports.F("geolocator", l.geolocator.Name()),
			ports.F("error", err))
		return l.fallback
	}

	l.logger.Debug("Device position acquired",
		ports.F("geolocator", l.geolocator.Name()),
		ports.F("lat", position.Lat),
		ports.F("lng", position.Lng))
	return position
}
