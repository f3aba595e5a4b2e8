package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

func TestSettingsHandler_Get_Defaults(t *testing.T) {
	f := newAPIFixture(t)
	f.timezones.EXPECT().DetectTimezone().Return("Asia/Karachi")

	w := f.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[SettingsResponse](t, w)
	assert.Equal(t, settings.LocationSettings{Timezone: "Asia/Karachi"}, response.LocationSettings)
	assert.False(t, response.CanSave)
}

func TestSettingsHandler_SaveThenGet(t *testing.T) {
	f := newAPIFixture(t)

	form := map[string]string{
		"address":   "London",
		"latitude":  "51.5074",
		"longitude": "-0.1278",
		"timezone":  "UTC",
	}

	w := f.do(t, http.MethodPut, "/api/settings", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[SettingsResponse](t, w).CanSave)

	w = f.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[SettingsResponse](t, w)
	assert.Equal(t, settings.LocationSettings{
		Address:   "London",
		Latitude:  "51.5074",
		Longitude: "-0.1278",
		Timezone:  "UTC",
	}, response.LocationSettings)
	assert.True(t, response.CanSave)
}

func TestSettingsHandler_Save_InvalidTimezone(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPut, "/api/settings", map[string]string{"timezone": "Nowhere/Special"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandler_Geocode(t *testing.T) {
	f := newAPIFixture(t)

	f.geocoder.EXPECT().SearchAddress(mock.Anything, "Rabwah, Pakistan").
		Return(ports.Coordinates{Lat: 31.7554, Lng: 72.9186}, nil).Once()

	w := f.do(t, http.MethodPost, "/api/settings/geocode", map[string]string{"address": " Rabwah, Pakistan "})
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[SettingsResponse](t, w)
	assert.Equal(t, "Rabwah, Pakistan", response.Address)
	assert.Equal(t, "31.7554", response.Latitude)
	assert.Equal(t, "72.9186", response.Longitude)
	assert.True(t, response.CanSave)

	var stored settings.LocationSettings
	found, err := f.store.Load(context.Background(), ports.SessionKeySettings, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, response.LocationSettings, stored)
}

func TestSettingsHandler_Geocode_FailureLeavesFormUnchanged(t *testing.T) {
	f := newAPIFixture(t)

	f.geocoder.EXPECT().SearchAddress(mock.Anything, "Atlantis").
		Return(ports.Coordinates{}, errors.NewNotFoundError("no location found for address")).Once()

	w := f.do(t, http.MethodPost, "/api/settings/geocode", map[string]string{"address": "Atlantis", "latitude": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[SettingsResponse](t, w)
	assert.Equal(t, "1", response.Latitude)
	assert.Empty(t, response.Longitude)
	assert.False(t, response.CanSave)
}

func TestSettingsHandler_Submit_Wait(t *testing.T) {
	f := newAPIFixture(t)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 51.5074, Lng: -0.1278}).
		Return(timingsAt("51.5074", "-0.1278"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 51.5074, -0.1278).Return("London, United Kingdom", nil).Once()

	w := f.do(t, http.MethodPost, "/api/settings/submit?wait=true", map[string]string{
		"latitude":  "51.5074",
		"longitude": "-0.1278",
		"timezone":  "America/New_York",
	})
	require.Equal(t, http.StatusOK, w.Code)

	response := decode[RefreshResponse](t, w)
	require.NotNil(t, response.Outcome)
	assert.Equal(t, prayer.OutcomeReady, *response.Outcome)
	assert.Equal(t, "London, United Kingdom", response.State.Location)
	assert.Equal(t, "America/New_York", response.State.Timezone)
	assert.Equal(t, &ports.Coordinates{Lat: 51.5074, Lng: -0.1278}, response.State.Cords)
}

func TestSettingsHandler_Submit_Validation(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name string
		form map[string]string
	}{
		{name: "missing longitude", form: map[string]string{"latitude": "10"}},
		{name: "not a number", form: map[string]string{"latitude": "north", "longitude": "10"}},
		{name: "out of range", form: map[string]string{"latitude": "91", "longitude": "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/api/settings/submit", tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Equal(t, uint64(0), f.manager.Snapshot().CycleID)
}

func TestSettingsHandler_Timezones(t *testing.T) {
	f := newAPIFixture(t)
	f.timezones.EXPECT().DetectTimezone().Return("Asia/Karachi")
	f.timezones.EXPECT().KnownTimezones().Return([]string{"UTC", "Asia/Karachi", "America/New_York"})

	w := f.do(t, http.MethodGet, "/api/settings/timezones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"Asia/Karachi", "UTC", "America/New_York"}, decode[TimezonesResponse](t, w).Timezones)
}

func TestSettingsHandler_Theme(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[ThemeResponse](t, w).Dark)

	w = f.do(t, http.MethodPut, "/api/theme", map[string]bool{"dark": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ThemeResponse](t, w).Dark)

	w = f.do(t, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[ThemeResponse](t, w).Dark)

	w = f.do(t, http.MethodPut, "/api/theme", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
