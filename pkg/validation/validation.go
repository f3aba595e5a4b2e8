package validation

import (
	"strconv"
	"strings"
	"time"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ParseNumber parses decimal text, rejecting empty input and NaN/Inf
func ParseNumber(s string) (float64, bool) {
	trimmed, ok := TrimAndValidate(s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v != v || v > 1e308 || v < -1e308 {
		return 0, false
	}
	return v, true
}

// IsNumeric validates that s holds a finite decimal number
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// IsValidLatitude validates a latitude in degrees
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude validates a longitude in degrees
func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// IsValidTimezone validates an IANA zone name; empty is rejected
func IsValidTimezone(tz string) bool {
	trimmed, ok := TrimAndValidate(tz)
	if !ok || trimmed == "Local" {
		return false
	}
	_, err := time.LoadLocation(trimmed)
	return err == nil
}
