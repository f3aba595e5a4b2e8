package prayer

import (
	"fmt"
	"strings"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

// GenericErrorMessage is the user-facing text set when a cycle fails
const GenericErrorMessage = "Something went wrong"

// Entry is a single named prayer time
type Entry struct {
	Name  string  `json:"name"`
	Time  int64   `json:"time"`
	Audio *string `json:"audio,omitempty"`
}

// Key returns the lower-cased name used for lookups
func (e Entry) Key() string {
	return strings.ToLower(strings.TrimSpace(e.Name))
}

// DayCoordinates holds the coordinates echoed by the timings service as decimal text
type DayCoordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// DayTiming is one day of prayer times; replaced wholesale, never mutated
type DayTiming struct {
	Prayers     []Entry        `json:"prayers"`
	Coordinates DayCoordinates `json:"coordinates"`
}

// ParseCoordinates converts the echoed decimal text into numeric coordinates
func (d *DayTiming) ParseCoordinates() (ports.Coordinates, error) {
	lat, ok := validation.ParseNumber(d.Coordinates.Latitude)
	if !ok {
		return ports.Coordinates{}, errors.NewParseError(
			fmt.Sprintf("invalid latitude %q in timings response", d.Coordinates.Latitude), nil)
	}
	lng, ok := validation.ParseNumber(d.Coordinates.Longitude)
	if !ok {
		return ports.Coordinates{}, errors.NewParseError(
			fmt.Sprintf("invalid longitude %q in timings response", d.Coordinates.Longitude), nil)
	}
	return ports.Coordinates{Lat: lat, Lng: lng}, nil
}

func dayTimingFromPorts(data *ports.TimingsData) *DayTiming {
	prayers := make([]Entry, 0, len(data.Prayers))
	for _, p := range data.Prayers {
		prayers = append(prayers, Entry{Name: p.Name, Time: p.Time, Audio: p.Audio})
	}
	return &DayTiming{
		Prayers: prayers,
		Coordinates: DayCoordinates{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
	}
}

// Outcome tags the terminal step of a cycle
type Outcome string

const (
	OutcomeNone          Outcome = "none"
	OutcomeReady         Outcome = "ready"
	OutcomeTimingsFailed Outcome = "timings_failed"
	OutcomeGeocodeFailed Outcome = "geocode_failed"
	// OutcomeSuperseded is reported by a cycle handle whose result was discarded
	OutcomeSuperseded Outcome = "superseded"
)

// IsFailure reports whether the outcome sets the error indicator
func (o Outcome) IsFailure() bool {
	return o == OutcomeTimingsFailed || o == OutcomeGeocodeFailed
}

// State is a snapshot of the manager's observable state
type State struct {
	Today    *DayTiming         `json:"today"`
	Loading  bool               `json:"loading"`
	Error    string             `json:"error,omitempty"`
	Cords    *ports.Coordinates `json:"cords,omitempty"`
	Location string             `json:"location"`
	Timezone string             `json:"timezone"`
	Outcome  Outcome            `json:"outcome"`
	CycleID  uint64             `json:"cycleId"`
}

// HasError reports whether the latest committed cycle failed
func (s State) HasError() bool {
	return s.Error != ""
}

func (s State) clone() State {
	if s.Cords != nil {
		cords := *s.Cords
		s.Cords = &cords
	}
	return s
}

// CycleResult is the outcome of the fetch pipeline before it is committed
type CycleResult struct {
	Outcome  Outcome
	Today    *DayTiming
	Cords    *ports.Coordinates
	Location string
	Err      error
}
