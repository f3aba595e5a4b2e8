package ports

import "context"

// Geolocator is the platform capability that reports the device position.
// Implementations return a GeolocationDenied error when the position is unavailable.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
	Name() string
}

// TimezoneDetector reports the environment's default IANA timezone
type TimezoneDetector interface {
	DetectTimezone() string
	KnownTimezones() []string
}
