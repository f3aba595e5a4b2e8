package settings

import (
	"strconv"
	"strings"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/validation"
)

// FallbackTimezones is offered when the environment cannot enumerate its zones
var FallbackTimezones = []string{"UTC", "Asia/Karachi", "America/New_York"}

// LocationSettings is the settings form as entered by the user
type LocationSettings struct {
	Address   string `json:"address"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Timezone  string `json:"timezone"`
}

// CanSave reports whether both coordinates are present and numeric
func (s LocationSettings) CanSave() bool {
	_, _, ok := s.Coordinates()
	return ok
}

// Coordinates parses the latitude and longitude text
func (s LocationSettings) Coordinates() (float64, float64, bool) {
	lat, latOK := validation.ParseNumber(s.Latitude)
	lng, lngOK := validation.ParseNumber(s.Longitude)
	if !latOK || !lngOK {
		return 0, 0, false
	}
	return lat, lng, true
}

// Normalize trims surrounding whitespace from every field
func (s LocationSettings) Normalize() LocationSettings {
	return LocationSettings{
		Address:   strings.TrimSpace(s.Address),
		Latitude:  strings.TrimSpace(s.Latitude),
		Longitude: strings.TrimSpace(s.Longitude),
		Timezone:  strings.TrimSpace(s.Timezone),
	}
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withPosition(s LocationSettings, position ports.Coordinates) LocationSettings {
	s.Latitude = formatCoordinate(position.Lat)
	s.Longitude = formatCoordinate(position.Lng)
	return s
}
