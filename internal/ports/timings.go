package ports

import "context"

// Coordinates is a position in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PrayerData is a single prayer as returned by the timings service
type PrayerData struct {
	Name  string
	Time  int64
	Audio *string
}

// TimingsData represents one day of timings; coordinates are the gateway's decimal text
type TimingsData struct {
	Prayers   []PrayerData
	Latitude  string
	Longitude string
}

// TimingsGateway defines the contract for the remote prayer timings service.
// A nil position requests the service's default location.
type TimingsGateway interface {
	FetchTimings(ctx context.Context, at *Coordinates) (*TimingsData, error)
}
