package prayer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

func TestNewManager_MissingDependencies(t *testing.T) {
	logger := mocks.NewLogger(t)
	timings := mocks.NewTimingsGateway(t)
	geocoder := mocks.NewGeocodingGateway(t)
	locator := NewLocator(nil, ports.Coordinates{}, logger)

	tests := []struct {
		name string
		deps ManagerDependencies
	}{
		{name: "missing timings", deps: ManagerDependencies{Geocoder: geocoder, Locator: locator, Logger: logger}},
		{name: "missing geocoder", deps: ManagerDependencies{Timings: timings, Locator: locator, Logger: logger}},
		{name: "missing locator", deps: ManagerDependencies{Timings: timings, Geocoder: geocoder, Logger: logger}},
		{name: "missing logger", deps: ManagerDependencies{Timings: timings, Geocoder: geocoder, Locator: locator}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewManager(tt.deps)
			assert.Nil(t, manager)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestManager_InitialState(t *testing.T) {
	f := newManagerFixture(t, false)

	state := f.manager.Snapshot()
	assert.Nil(t, state.Today)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Nil(t, state.Cords)
	assert.Empty(t, state.Location)
	assert.Empty(t, state.Timezone)
	assert.Equal(t, OutcomeNone, state.Outcome)
}

func TestManager_Mount_UsesDevicePosition(t *testing.T) {
	f := newManagerFixture(t, true)

	f.geolocator.EXPECT().CurrentPosition(mock.Anything).Return(ports.Coordinates{Lat: 51.5074, Lng: -0.1278}, nil).Once()
	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 51.5074, Lng: -0.1278}).
		Return(timingsAt("51.5074", "-0.1278"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 51.5074, -0.1278).Return("London, United Kingdom", nil).Once()

	result := waitCycle(t, f.manager.Mount())
	assert.Equal(t, OutcomeReady, result.Outcome)

	state := f.manager.Snapshot()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.Today)
	assert.Len(t, state.Today.Prayers, 4)
	require.NotNil(t, state.Cords)
	assert.Equal(t, ports.Coordinates{Lat: 51.5074, Lng: -0.1278}, *state.Cords)
	assert.Equal(t, "London, United Kingdom", state.Location)
	assert.Equal(t, OutcomeReady, state.Outcome)
}

func TestManager_Mount_FallsBackWithoutGeolocation(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: -33.8688, Lng: 151.2093}).
		Return(timingsAt("-33.8688", "151.2093"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, -33.8688, 151.2093).Return("Sydney, Australia", nil).Once()

	waitCycle(t, f.manager.Mount())

	state := f.manager.Snapshot()
	require.NotNil(t, state.Cords)
	assert.Equal(t, ports.Coordinates{Lat: -33.8688, Lng: 151.2093}, *state.Cords)
	assert.Equal(t, "Sydney, Australia", state.Location)
}

func TestManager_Mount_FallsBackWhenGeolocationDenied(t *testing.T) {
	f := newManagerFixture(t, true)

	f.geolocator.EXPECT().CurrentPosition(mock.Anything).
		Return(ports.Coordinates{}, errors.NewGeolocationDeniedError("permission denied", nil)).Once()
	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: -33.8688, Lng: 151.2093}).
		Return(timingsAt("-33.8688", "151.2093"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, -33.8688, 151.2093).Return("Sydney, Australia", nil).Once()

	waitCycle(t, f.manager.Mount())

	state := f.manager.Snapshot()
	assert.Empty(t, state.Error, "geolocation denial is not a user-facing error")
	require.NotNil(t, state.Cords)
	assert.Equal(t, -33.8688, state.Cords.Lat)
	assert.Equal(t, 151.2093, state.Cords.Lng)
}

func TestManager_Mount_StartsOnlyOneCycle(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).Return(timingsAt("-33.8688", "151.2093"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return("Sydney, Australia", nil).Once()

	first := f.manager.Mount()
	second := f.manager.Mount()

	assert.Same(t, first, second)
	waitCycle(t, first)
	assert.Equal(t, uint64(1), f.manager.Snapshot().CycleID)
}

func TestManager_Refresh_RequiresBothCoordinates(t *testing.T) {
	f := newManagerFixture(t, false)

	tests := []struct {
		name string
		lat  *float64
		lng  *float64
	}{
		{name: "both missing"},
		{name: "latitude missing", lng: float(10)},
		{name: "longitude missing", lat: float(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle, started := f.manager.Refresh(tt.lat, tt.lng)
			assert.False(t, started)
			assert.Nil(t, cycle)
		})
	}

	state := f.manager.Snapshot()
	assert.False(t, state.Loading)
	assert.Equal(t, uint64(0), state.CycleID)
}

func TestManager_Refresh_UsesGatewayEchoForCords(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 51.50741, Lng: -0.12781}).
		Return(timingsAt("51.5074", "-0.1278"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 51.5074, -0.1278).Return("London, United Kingdom", nil).Once()

	cycle, started := f.manager.Refresh(float(51.50741), float(-0.12781))
	require.True(t, started)
	result := waitCycle(t, cycle)

	require.NotNil(t, result.Cords)
	state := f.manager.Snapshot()
	require.NotNil(t, state.Cords)
	assert.Equal(t, ports.Coordinates{Lat: 51.5074, Lng: -0.1278}, *state.Cords)
}

func TestManager_TimingsFailure_KeepsPreviousDay(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 10, Lng: 10}).
		Return(timingsAt("10", "10"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Somewhere, Nigeria", nil).Once()
	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 20, Lng: 20}).
		Return(nil, errors.NewFetchError(errors.ResourceTimings, nil)).Once()

	cycle, _ := f.manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)
	before := f.manager.Snapshot()

	cycle, _ = f.manager.Refresh(float(20), float(20))
	result := waitCycle(t, cycle)
	assert.Equal(t, OutcomeTimingsFailed, result.Outcome)
	assert.True(t, errors.IsFetchError(result.Err, errors.ResourceTimings))

	after := f.manager.Snapshot()
	assert.Same(t, before.Today, after.Today)
	assert.Equal(t, GenericErrorMessage, after.Error)
	assert.Equal(t, before.Cords, after.Cords)
	assert.Equal(t, "Somewhere, Nigeria", after.Location)
	assert.False(t, after.Loading)
	assert.Equal(t, OutcomeTimingsFailed, after.Outcome)
}

func TestManager_TimingsUnparsableCoordinates(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).Return(timingsAt("north", "10"), nil).Once()

	cycle, _ := f.manager.Refresh(float(10), float(10))
	result := waitCycle(t, cycle)

	assert.Equal(t, OutcomeTimingsFailed, result.Outcome)
	assert.True(t, errors.IsParseError(result.Err))

	state := f.manager.Snapshot()
	assert.Nil(t, state.Today)
	assert.Nil(t, state.Cords)
	assert.Equal(t, GenericErrorMessage, state.Error)
}

func TestManager_GeocodeFailure_CommitsTimings(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 10, Lng: 10}).
		Return(timingsAt("10", "10"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("First, Place", nil).Once()
	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 20, Lng: 20}).
		Return(timingsAt("20", "20"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 20.0, 20.0).
		Return("", errors.NewFetchError(errors.ResourceAddress, nil)).Once()

	cycle, _ := f.manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)

	cycle, _ = f.manager.Refresh(float(20), float(20))
	result := waitCycle(t, cycle)
	assert.Equal(t, OutcomeGeocodeFailed, result.Outcome)
	assert.True(t, errors.IsFetchError(result.Err, errors.ResourceAddress))

	state := f.manager.Snapshot()
	require.NotNil(t, state.Today)
	assert.Equal(t, "20", state.Today.Coordinates.Latitude)
	require.NotNil(t, state.Cords)
	assert.Equal(t, ports.Coordinates{Lat: 20, Lng: 20}, *state.Cords)
	assert.Equal(t, GenericErrorMessage, state.Error)
	assert.Equal(t, "First, Place", state.Location)
	assert.Equal(t, OutcomeGeocodeFailed, state.Outcome)
}

func TestManager_SuccessClearsError(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 10, Lng: 10}).
		Return(nil, errors.NewFetchError(errors.ResourceTimings, nil)).Once()
	f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 20, Lng: 20}).
		Return(timingsAt("20", "20"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 20.0, 20.0).Return("Second, Place", nil).Once()

	cycle, _ := f.manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)
	assert.Equal(t, GenericErrorMessage, f.manager.Snapshot().Error)

	cycle, _ = f.manager.Refresh(float(20), float(20))
	waitCycle(t, cycle)

	state := f.manager.Snapshot()
	assert.Empty(t, state.Error)
	assert.Equal(t, "Second, Place", state.Location)
	assert.Equal(t, OutcomeReady, state.Outcome)
}

func TestManager_LoadingWhileCycleInFlight(t *testing.T) {
	f := newManagerFixture(t, false)

	release := make(chan struct{})
	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
			<-release
			return timingsAt("10", "10"), nil
		}).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Place", nil).Once()

	cycle, started := f.manager.Refresh(float(10), float(10))
	require.True(t, started)

	state := f.manager.Snapshot()
	assert.True(t, state.Loading)
	assert.Equal(t, cycle.ID(), state.CycleID)

	close(release)
	waitCycle(t, cycle)
	assert.False(t, f.manager.Snapshot().Loading)
}

func TestManager_ParameterlessLoadLeavesCords(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, (*ports.Coordinates)(nil)).Return(timingsAt("31.5", "74.3"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 31.5, 74.3).Return("Lahore, Pakistan", nil).Once()

	result := f.manager.load(context.Background(), nil)

	assert.Equal(t, OutcomeReady, result.Outcome)
	assert.Nil(t, result.Cords)
	assert.Equal(t, "Lahore, Pakistan", result.Location)
}

func TestManager_SetCordsAndTimezoneDoNotFetch(t *testing.T) {
	f := newManagerFixture(t, false)

	f.manager.SetCords(ports.Coordinates{Lat: 1.5, Lng: 2.5})
	f.manager.SetTimezone("Asia/Karachi")

	state := f.manager.Snapshot()
	require.NotNil(t, state.Cords)
	assert.Equal(t, ports.Coordinates{Lat: 1.5, Lng: 2.5}, *state.Cords)
	assert.Equal(t, "Asia/Karachi", state.Timezone)
	assert.False(t, state.Loading)
	assert.Equal(t, uint64(0), state.CycleID)
}

func TestManager_RefreshKeepsTimezoneOverride(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).Return(timingsAt("10", "10"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Place", nil).Once()

	f.manager.SetTimezone("America/New_York")
	cycle, _ := f.manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)

	assert.Equal(t, "America/New_York", f.manager.Snapshot().Timezone)
}

func TestManager_ConcurrentRefresh_LatestCycleWins(t *testing.T) {
	t.Run("earlier cycle canceled", func(t *testing.T) {
		f := newManagerFixture(t, false)

		f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 10, Lng: 10}).
			RunAndReturn(func(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
				<-ctx.Done()
				return nil, errors.NewFetchError(errors.ResourceTimings, ctx.Err())
			}).Once()
		f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 20, Lng: 20}).
			Return(timingsAt("20", "20"), nil).Once()
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 20.0, 20.0).Return("Twenty, Place", nil).Once()

		first, _ := f.manager.Refresh(float(10), float(10))
		second, _ := f.manager.Refresh(float(20), float(20))

		secondResult := waitCycle(t, second)
		firstResult := waitCycle(t, first)

		assert.Equal(t, OutcomeReady, secondResult.Outcome)
		assert.Equal(t, OutcomeSuperseded, firstResult.Outcome)

		state := f.manager.Snapshot()
		assert.Empty(t, state.Error)
		assert.Equal(t, "20", state.Today.Coordinates.Latitude)
		assert.Equal(t, ports.Coordinates{Lat: 20, Lng: 20}, *state.Cords)
		assert.Equal(t, "Twenty, Place", state.Location)
		assert.Equal(t, second.ID(), state.CycleID)
		assert.False(t, state.Loading)
	})

	t.Run("earlier cycle finishes last", func(t *testing.T) {
		f := newManagerFixture(t, false)

		release := make(chan struct{})
		f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 10, Lng: 10}).
			RunAndReturn(func(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
				<-release
				return timingsAt("10", "10"), nil
			}).Once()
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Ten, Place", nil).Maybe()
		f.timings.EXPECT().FetchTimings(mock.Anything, &ports.Coordinates{Lat: 20, Lng: 20}).
			Return(timingsAt("20", "20"), nil).Once()
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 20.0, 20.0).Return("Twenty, Place", nil).Once()

		first, _ := f.manager.Refresh(float(10), float(10))
		second, _ := f.manager.Refresh(float(20), float(20))

		waitCycle(t, second)
		close(release)
		firstResult := waitCycle(t, first)
		assert.Equal(t, OutcomeSuperseded, firstResult.Outcome)

		state := f.manager.Snapshot()
		assert.Equal(t, "20", state.Today.Coordinates.Latitude)
		assert.Equal(t, ports.Coordinates{Lat: 20, Lng: 20}, *state.Cords)
		assert.Equal(t, "Twenty, Place", state.Location)
	})
}

func TestManager_Subscribe(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).Return(timingsAt("10", "10"), nil).Once()
	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Place", nil).Once()

	updates, cancel := f.manager.Subscribe(8)

	initial := <-updates
	assert.False(t, initial.Loading)

	cycle, _ := f.manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)

	loading := <-updates
	assert.True(t, loading.Loading)

	ready := <-updates
	assert.False(t, ready.Loading)
	assert.Equal(t, "Place", ready.Location)

	cancel()
	_, open := <-updates
	assert.False(t, open)
	cancel()
}

func TestManager_Close_CancelsInFlightCycle(t *testing.T) {
	f := newManagerFixture(t, false)

	f.timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, at *ports.Coordinates) (*ports.TimingsData, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	updates, _ := f.manager.Subscribe(4)
	cycle, _ := f.manager.Refresh(float(10), float(10))

	f.manager.Close()

	result := waitCycle(t, cycle)
	assert.Equal(t, OutcomeSuperseded, result.Outcome)
	assert.False(t, f.manager.Snapshot().Loading)

	for range updates {
	}

	again, started := f.manager.Refresh(float(10), float(10))
	assert.False(t, started)
	assert.Nil(t, again)
	assert.Nil(t, f.manager.Mount())
}

func TestManager_RecordsCycleMetrics(t *testing.T) {
	timings := mocks.NewTimingsGateway(t)
	geocoder := mocks.NewGeocodingGateway(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)
	allowLogs(logger)

	timings.EXPECT().FetchTimings(mock.Anything, mock.Anything).Return(timingsAt("10", "10"), nil).Once()
	geocoder.EXPECT().ReverseGeocode(mock.Anything, 10.0, 10.0).Return("Place", nil).Once()
	metrics.EXPECT().RecordCycle("ready", mock.AnythingOfType("time.Duration")).Once()

	manager, err := NewManager(ManagerDependencies{
		Timings:  timings,
		Geocoder: geocoder,
		Locator:  NewLocator(nil, ports.Coordinates{}, logger),
		Logger:   logger,
		Metrics:  metrics,
	})
	require.NoError(t, err)
	defer manager.Close()

	cycle, _ := manager.Refresh(float(10), float(10))
	waitCycle(t, cycle)
}

func TestCycle_WaitHonorsContext(t *testing.T) {
	cycle := newCycle(7)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := cycle.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, uint64(7), cycle.ID())
}
