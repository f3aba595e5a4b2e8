// Package external provides adapters for external services
// These adapters implement ports for the timings, geocoding and geolocation services and for caching.
package external

import (
	"net/http"
	"time"

	"prayertimes.app/internal/ports"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func closeBody(resp *http.Response, logger ports.Logger, service string) {
	if closeErr := resp.Body.Close(); closeErr != nil {
		logger.Warn("Failed to close "+service+" response body", ports.F("error", closeErr))
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
