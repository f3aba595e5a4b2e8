package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

const defaultIPGeolocationBaseURL = "http://ip-api.com"

// IPGeolocationAdapter implements Geolocator port by looking up the public IP address
type IPGeolocationAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// IPGeolocationParams holds parameters for creating the IP geolocation adapter
type IPGeolocationParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// IPGeolocationResponse represents the response from the ip-api.com JSON endpoint
type IPGeolocationResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// NewIPGeolocationAdapter creates a new IP geolocation adapter
func NewIPGeolocationAdapter(params IPGeolocationParams) *IPGeolocationAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultIPGeolocationBaseURL
	}

	return &IPGeolocationAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
	}
}

// CurrentPosition reports the approximate position of this host; every failure is a denial
func (g *IPGeolocationAdapter) CurrentPosition(ctx context.Context) (ports.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/json", nil)
	if err != nil {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError("failed to build geolocation request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError("geolocation lookup failed", err)
	}
	defer closeBody(resp, g.logger, "geolocation")

	if !isSuccess(resp.StatusCode) {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError(
			fmt.Sprintf("geolocation service returned status %d", resp.StatusCode), nil)
	}

	var apiResp IPGeolocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError("failed to decode geolocation response", err)
	}
	if apiResp.Status != "success" {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError(
			fmt.Sprintf("geolocation unavailable: %s", apiResp.Message), nil)
	}
	if !validation.IsValidLatitude(apiResp.Lat) || !validation.IsValidLongitude(apiResp.Lon) {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError("geolocation returned an invalid position", nil)
	}

	return ports.Coordinates{Lat: apiResp.Lat, Lng: apiResp.Lon}, nil
}

// Name returns the geolocator name
func (g *IPGeolocationAdapter) Name() string {
	return "ip"
}

// StaticGeolocationAdapter implements Geolocator port with a configured device position
type StaticGeolocationAdapter struct {
	position ports.Coordinates
}

// NewStaticGeolocationAdapter creates a geolocator that always reports position
func NewStaticGeolocationAdapter(position ports.Coordinates) *StaticGeolocationAdapter {
	return &StaticGeolocationAdapter{position: position}
}

func (g *StaticGeolocationAdapter) CurrentPosition(ctx context.Context) (ports.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return ports.Coordinates{}, errors.NewGeolocationDeniedError("geolocation canceled", err)
	}
	return g.position, nil
}

func (g *StaticGeolocationAdapter) Name() string {
	return "static"
}
