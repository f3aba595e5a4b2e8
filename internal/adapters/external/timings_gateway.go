package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const defaultTimingsBaseURL = "https://alislam.org"

// TimingsGatewayAdapter implements TimingsGateway port for the alislam.org adhan API
type TimingsGatewayAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// TimingsGatewayParams holds parameters for creating the timings gateway
type TimingsGatewayParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// TimingsResponse represents the response from the timings API
type TimingsResponse struct {
	MultiDayTimings []struct {
		Prayers []struct {
			Name  string  `json:"name"`
			Time  int64   `json:"time"`
			Audio *string `json:"audio"`
		} `json:"prayers"`
		Coordinates struct {
			Latitude  coordinateText `json:"latitude"`
			Longitude coordinateText `json:"longitude"`
		} `json:"coordinates"`
	} `json:"multiDayTimings"`
}

// coordinateText accepts a coordinate sent either as a JSON string or a number
type coordinateText string

func (c *coordinateText) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = coordinateText(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("coordinate must be a string or number: %w", err)
	}
	*c = coordinateText(number.String())
	return nil
}

// NewTimingsGatewayAdapter creates a new timings gateway adapter
func NewTimingsGatewayAdapter(params TimingsGatewayParams) *TimingsGatewayAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultTimingsBaseURL
	}

	return &TimingsGatewayAdapter{
		baseURL: baseURL,
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
	}
}

// FetchTimings retrieves one day of timings; a nil position lets the service pick its default
func (g *TimingsGatewayAdapter) FetchTimings(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
	endpoint := g.baseURL + "/adhan/api/timings/day"
	if at != nil {
		query := url.Values{}
		query.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
		query.Set("lng", strconv.FormatFloat(at.Lng, 'f', -1, 64))
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewFetchError(errors.ResourceTimings, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(errors.ResourceTimings, err)
	}
	defer closeBody(resp, g.logger, "timings")

	if !isSuccess(resp.StatusCode) {
		return nil, errors.NewFetchError(errors.ResourceTimings,
			fmt.Errorf("timings API returned status %d", resp.StatusCode))
	}

	var apiResp TimingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode timings response", err)
	}
	if len(apiResp.MultiDayTimings) == 0 {
		return nil, errors.NewParseError("timings response contains no days", nil)
	}

	day := apiResp.MultiDayTimings[0]
	prayers := make([]ports.PrayerData, 0, len(day.Prayers))
	for _, p := range day.Prayers {
		prayers = append(prayers, ports.PrayerData{Name: p.Name, Time: p.Time, Audio: p.Audio})
	}

	return &ports.TimingsData{
		Prayers:   prayers,
		Latitude:  string(day.Coordinates.Latitude),
		Longitude: string(day.Coordinates.Longitude),
	}, nil
}

// Name returns the gateway name used in logs and metrics
func (g *TimingsGatewayAdapter) Name() string {
	return "timings"
}
