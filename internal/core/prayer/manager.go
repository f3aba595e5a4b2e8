package prayer

import (
	"context"
	"sync"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// Manager owns the prayer state and runs location/timings/geocoding cycles.
// Only the latest started cycle may commit; older cycles are canceled and discarded.
type Manager struct {
	timings  ports.TimingsGateway
	geocoder ports.GeocodingGateway
	locator  *Locator
	logger   ports.Logger
	metrics  ports.MetricsCollector

	mu          sync.RWMutex
	state       State
	latest      uint64
	cancelCycle context.CancelFunc
	mountCycle  *Cycle
	closed      bool
	subscribers map[uint64]chan State
	nextSubID   uint64

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup
}

type ManagerDependencies struct {
	Timings  ports.TimingsGateway
	Geocoder ports.GeocodingGateway
	Locator  *Locator
	Logger   ports.Logger
	// Metrics is optional
	Metrics ports.MetricsCollector
}

func NewManager(deps ManagerDependencies) (*Manager, error) {
	if deps.Timings == nil {
		return nil, errors.NewValidationError("timings gateway is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoding gateway is required")
	}
	if deps.Locator == nil {
		return nil, errors.NewValidationError("locator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	baseCtx, stop := context.WithCancel(context.Background())
	return &Manager{
		timings:     deps.Timings,
		geocoder:    deps.Geocoder,
		locator:     deps.Locator,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		state:       State{Outcome: OutcomeNone},
		subscribers: make(map[uint64]chan State),
		baseCtx:     baseCtx,
		stop:        stop,
	}, nil
}

// Cycle is a handle to one started fetch cycle
type Cycle struct {
	id     uint64
	done   chan struct{}
	result CycleResult
}

func newCycle(id uint64) *Cycle {
	return &Cycle{id: id, done: make(chan struct{})}
}

// ID returns the cycle id, matching State.CycleID while the cycle is the latest
func (c *Cycle) ID() uint64 {
	return c.id
}

// Done is closed when the cycle reaches its terminal step
func (c *Cycle) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the cycle finishes or ctx is done
func (c *Cycle) Wait(ctx context.Context) (CycleResult, error) {
	select {
	case <-c.done:
		return c.result, nil
	case <-ctx.Done():
		return CycleResult{}, ctx.Err()
	}
}

// Mount starts the initial geolocation-driven cycle exactly once; later calls return the same handle
func (m *Manager) Mount() *Cycle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mountCycle != nil || m.closed {
		return m.mountCycle
	}

	m.mountCycle = m.startLocked(func(ctx context.Context) *ports.Coordinates {
		position := m.locator.Acquire(ctx)
		return &position
	})
	return m.mountCycle
}

// Refresh starts a cycle for the given position; it is a no-op unless both values are present
func (m *Manager) Refresh(lat, lng *float64) (*Cycle, bool) {
	if lat == nil || lng == nil {
		m.logger.Debug("Refresh ignored, coordinates incomplete")
		return nil, false
	}

	at := ports.Coordinates{Lat: *lat, Lng: *lng}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, false
	}

	return m.startLocked(func(context.Context) *ports.Coordinates {
		return &at
	}), true
}

// SetCords overrides the coordinates without fetching
func (m *Manager) SetCords(cords ports.Coordinates) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Cords = &cords
	m.notifyLocked()
}

// SetTimezone overrides the display timezone without fetching; "" restores the detected default
func (m *Manager) SetTimezone(timezone string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Timezone = timezone
	m.notifyLocked()
}

// Snapshot returns a copy of the current state
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.clone()
}

// Subscribe returns a channel that receives the current state and every later change.
// Sends never block; a full buffer drops the update.
func (m *Manager) Subscribe(buffer int) (<-chan State, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan State, buffer)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = ch
	ch <- m.state.clone()
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if sub, ok := m.subscribers[id]; ok {
				delete(m.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close cancels any in-flight cycle, waits for it and closes all subscriptions
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.stop()
	m.mu.Unlock()

	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	for id, ch := range m.subscribers {
		delete(m.subscribers, id)
		close(ch)
	}
}

func (m *Manager) startLocked(resolve func(ctx context.Context) *ports.Coordinates) *Cycle {
	if m.cancelCycle != nil {
		m.cancelCycle()
	}

	m.latest++
	id := m.latest
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.cancelCycle = cancel

	m.state.Loading = true
	m.state.CycleID = id
	m.notifyLocked()

	cycle := newCycle(id)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer cancel()
		m.run(ctx, cycle, resolve)
	}()

	m.logger.Debug("Prayer cycle started", ports.F("cycle", id))
	return cycle
}

func (m *Manager) run(ctx context.Context, cycle *Cycle, resolve func(ctx context.Context) *ports.Coordinates) {
	start := time.Now()

	result := m.load(ctx, resolve(ctx))
	if !m.commit(cycle.id, result) {
		result.Outcome = OutcomeSuperseded
		m.logger.Debug("Prayer cycle superseded", ports.F("cycle", cycle.id))
	}

	duration := time.Since(start)
	if m.metrics != nil {
		m.metrics.RecordCycle(string(result.Outcome), duration)
	}

	cycle.result = result
	close(cycle.done)
}

// load runs the timings then geocoding pipeline without touching state
func (m *Manager) load(ctx context.Context, at *ports.Coordinates) CycleResult {
	data, err := m.timings.FetchTimings(ctx, at)
	if err != nil {
		return CycleResult{Outcome: OutcomeTimingsFailed, Err: err}
	}

	today := dayTimingFromPorts(data)
	position, err := today.ParseCoordinates()
	if err != nil {
		return CycleResult{Outcome: OutcomeTimingsFailed, Err: err}
	}

	result := CycleResult{Today: today}
	if at != nil {
		result.Cords = &position
	}

	location, err := m.geocoder.ReverseGeocode(ctx, position.Lat, position.Lng)
	if err != nil {
		result.Outcome = OutcomeGeocodeFailed
		result.Err = err
		return result
	}

	result.Outcome = OutcomeReady
	result.Location = location
	return result
}

// commit applies a cycle result in one step if the cycle is still the latest
func (m *Manager) commit(id uint64, result CycleResult) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id != m.latest || m.closed {
		return false
	}

	switch result.Outcome {
	case OutcomeTimingsFailed:
		m.state.Error = GenericErrorMessage
		m.logger.Error("Failed to fetch prayer timings",
			ports.F("cycle", id),
			ports.F("error", result.Err))
	case OutcomeGeocodeFailed:
		m.state.Today = result.Today
		m.applyCordsLocked(result.Cords)
		m.state.Error = GenericErrorMessage
		m.logger.Error("Failed to resolve location name",
			ports.F("cycle", id),
			ports.F("error", result.Err))
	case OutcomeReady:
		m.state.Today = result.Today
		m.applyCordsLocked(result.Cords)
		m.state.Location = result.Location
		m.state.Error = ""
		m.logger.Info("Prayer timings updated",
			ports.F("cycle", id),
			ports.F("location", result.Location),
			ports.F("prayers", len(result.Today.Prayers)))
	}

	m.state.Loading = false
	m.state.Outcome = result.Outcome
	m.cancelCycle = nil
	m.notifyLocked()
	return true
}

func (m *Manager) applyCordsLocked(cords *ports.Coordinates) {
	if cords == nil {
		return
	}
	c := *cords
	m.state.Cords = &c
}

func (m *Manager) notifyLocked() {
	if len(m.subscribers) == 0 {
		return
	}
	snapshot := m.state.clone()
	for _, ch := range m.subscribers {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
