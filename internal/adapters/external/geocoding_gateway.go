package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

const (
	defaultGeocodingBaseURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent        = "prayertimes.app/1.0"
)

// NominatimGeocodingAdapter implements GeocodingGateway port for OpenStreetMap Nominatim
type NominatimGeocodingAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

// NominatimGeocodingParams holds parameters for creating the Nominatim adapter
type NominatimGeocodingParams struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    ports.Logger
}

// NominatimAddress is the address breakdown of a reverse lookup
type NominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Hamlet  string `json:"hamlet"`
	Country string `json:"country"`
}

// NominatimReverseResponse represents the response from the reverse endpoint
type NominatimReverseResponse struct {
	Address NominatimAddress `json:"address"`
}

// NominatimSearchResult represents one match from the search endpoint
type NominatimSearchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocodingAdapter creates a new Nominatim geocoding adapter
func NewNominatimGeocodingAdapter(params NominatimGeocodingParams) *NominatimGeocodingAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultGeocodingBaseURL
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &NominatimGeocodingAdapter{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    newHTTPClient(params.Timeout),
		logger:    params.Logger,
	}
}

// FormatPlaceLabel joins the most specific settlement name and the country with ", "
func FormatPlaceLabel(address NominatimAddress) string {
	parts := make([]string, 0, 2)
	for _, place := range []string{address.City, address.Town, address.Village, address.Hamlet} {
		if place != "" {
			parts = append(parts, place)
			break
		}
	}
	if address.Country != "" {
		parts = append(parts, address.Country)
	}
	return strings.Join(parts, ", ")
}

// ReverseGeocode resolves a position to a place label
func (g *NominatimGeocodingAdapter) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var apiResp NominatimReverseResponse
	if err := g.get(ctx, "/reverse", query, errors.ResourceAddress, &apiResp); err != nil {
		return "", err
	}

	return FormatPlaceLabel(apiResp.Address), nil
}

// SearchAddress resolves free-form address text to the first matching position
func (g *NominatimGeocodingAdapter) SearchAddress(ctx context.Context, address string) (ports.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ports.Coordinates{}, errors.NewValidationError("address cannot be empty")
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("q", address)

	var results []NominatimSearchResult
	if err := g.get(ctx, "/search", query, errors.ResourceGeocodeForward, &results); err != nil {
		return ports.Coordinates{}, err
	}
	if len(results) == 0 {
		return ports.Coordinates{}, errors.NewNotFoundError("no location found for address")
	}

	lat, latOK := validation.ParseNumber(results[0].Lat)
	lon, lonOK := validation.ParseNumber(results[0].Lon)
	if !latOK || !lonOK {
		return ports.Coordinates{}, errors.NewParseError(
			fmt.Sprintf("invalid coordinates %q, %q in search result", results[0].Lat, results[0].Lon), nil)
	}

	return ports.Coordinates{Lat: lat, Lng: lon}, nil
}

// Name returns the gateway name used in logs and metrics
func (g *NominatimGeocodingAdapter) Name() string {
	return "nominatim"
}

func (g *NominatimGeocodingAdapter) get(ctx context.Context, path string, query url.Values, resource string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewFetchError(resource, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.NewFetchError(resource, err)
	}
	defer closeBody(resp, g.logger, "Nominatim")

	if !isSuccess(resp.StatusCode) {
		return errors.NewFetchError(resource, fmt.Errorf("nominatim returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewParseError("failed to decode Nominatim response", err)
	}
	return nil
}
