package ports

import "context"

// GeocodingGateway defines the contract for reverse and forward geocoding
type GeocodingGateway interface {
	// ReverseGeocode resolves a position to a "city, country" label; missing parts are omitted
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
	// SearchAddress resolves free-form address text to the best matching position
	SearchAddress(ctx context.Context, query string) (Coordinates, error)
}
