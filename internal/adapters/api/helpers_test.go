package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/adapters/external"
	"prayertimes.app/internal/adapters/infrastructure"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
)

const testTimestamp = int64(1700000000000) // 2023-11-14 22:13:20 UTC

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for fields := 0; fields <= 4; fields++ {
		args := make([]interface{}, fields)
		for i := range args {
			args[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, args...).Maybe()
	}

	return mockLogger
}

func timingsAt(lat, lng string) *ports.TimingsData {
	return &ports.TimingsData{
		Prayers: []ports.PrayerData{
			{Name: "Fajr", Time: testTimestamp},
			{Name: "Sunrise", Time: testTimestamp + int64(time.Hour/time.Millisecond)},
			{Name: "Zuhr", Time: testTimestamp + int64(6*time.Hour/time.Millisecond)},
			{Name: "Sunset", Time: testTimestamp + int64(11*time.Hour/time.Millisecond)},
		},
		Latitude:  lat,
		Longitude: lng,
	}
}

type apiFixture struct {
	router    *gin.Engine
	timings   *mocks.TimingsGateway
	geocoder  *mocks.GeocodingGateway
	timezones *mocks.TimezoneDetector
	health    *mocks.SystemHealthChecker
	store     *external.SessionStoreAdapter
	metrics   *infrastructure.PrometheusMetricsCollector
	manager   *prayer.Manager
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := setupLoggerMock(t)
	f := &apiFixture{
		timings:   mocks.NewTimingsGateway(t),
		geocoder:  mocks.NewGeocodingGateway(t),
		timezones: mocks.NewTimezoneDetector(t),
		health:    mocks.NewSystemHealthChecker(t),
		metrics:   infrastructure.NewPrometheusMetricsCollector(infrastructure.MetricsCollectorConfig{}),
	}

	store, err := external.NewSessionStoreAdapter(external.SessionStoreParams{
		Cache: external.NewMemoryCacheProvider(external.CacheKeyPrefix),
	})
	require.NoError(t, err)
	f.store = store

	manager, err := prayer.NewManager(prayer.ManagerDependencies{
		Timings:  f.timings,
		Geocoder: f.geocoder,
		Locator:  prayer.NewLocator(nil, ports.Coordinates{Lat: -33.8688, Lng: 151.2093}, logger),
		Logger:   logger,
		Metrics:  f.metrics,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Close)
	f.manager = manager

	settingsUseCase, err := settings.NewUseCase(settings.UseCaseDependencies{
		Store:     store,
		Geocoder:  f.geocoder,
		Prayer:    manager,
		Timezones: f.timezones,
		Logger:    logger,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           ServerConfig{Host: "127.0.0.1", Port: 0},
		Prayer:           manager,
		SettingsUseCase:  settingsUseCase,
		Timezones:        f.timezones,
		HealthChecker:    f.health,
		MetricsCollector: f.metrics,
		MetricsHandler:   f.metrics.Handler(),
	})
	require.NoError(t, err)
	f.router = server.GetRouter()

	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// loadTimings runs one refresh cycle to completion through the manager
func (f *apiFixture) loadTimings(t *testing.T, lat, lng float64, latText, lngText, location string) {
	t.Helper()

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: lat, Lng: lng}).
		Return(timingsAt(latText, lngText), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, lat, lng).Return(location, nil).Once()

	cycle, started := f.manager.Refresh(&lat, &lng)
	require.True(t, started)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := cycle.Wait(ctx)
	require.NoError(t, err)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
