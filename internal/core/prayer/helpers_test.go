package prayer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
)

const testTimestamp = int64(1700000000000) // 2023-11-14 22:13:20 UTC

// allowLogs lets the logger mock accept any call with up to three fields
func allowLogs(l *mocks.Logger) {
	for fields := 0; fields <= 3; fields++ {
		args := make([]interface{}, fields)
		for i := range args {
			args[i] = mock.Anything
		}
		l.EXPECT().Debug(mock.Anything, args...).Maybe()
		l.EXPECT().Info(mock.Anything, args...).Maybe()
		l.EXPECT().Warn(mock.Anything, args...).Maybe()
		l.EXPECT().Error(mock.Anything, args...).Maybe()
	}
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

func float(v float64) *float64 {
	return &v
}

func waitCycle(t *testing.T, cycle *Cycle) CycleResult {
	t.Helper()
	require.NotNil(t, cycle)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := cycle.Wait(ctx)
	require.NoError(t, err)
	return result
}

type managerFixture struct {
	timings    *mocks.TimingsGateway
	geocoder   *mocks.GeocodingGateway
	geolocator *mocks.Geolocator
	logger     *mocks.Logger
	manager    *Manager
}

func newManagerFixture(t *testing.T, withGeolocator bool) *managerFixture {
	t.Helper()

	f := &managerFixture{
		timings:  mocks.NewTimingsGateway(t),
		geocoder: mocks.NewGeocodingGateway(t),
		logger:   mocks.NewLogger(t),
	}
	allowLogs(f.logger)

	var geolocator ports.Geolocator
	if withGeolocator {
		f.geolocator = mocks.NewGeolocator(t)
		f.geolocator.EXPECT().Name().Return("test").Maybe()
		geolocator = f.geolocator
	}

	locator := NewLocator(geolocator, ports.Coordinates{Lat: -33.8688, Lng: 151.2093}, f.logger)
	manager, err := NewManager(ManagerDependencies{
		Timings:  f.timings,
		Geocoder: f.geocoder,
		Locator:  locator,
		Logger:   f.logger,
	})
	require.NoError(t, err)
	t.Cleanup(manager.Close)

	f.manager = manager
	return f
}
