package prayer

import (
	"fmt"
	"time"

	"prayertimes.app/pkg/errors"
)

// CardTimeLayout renders a time as hour, minutes and meridiem
const CardTimeLayout = "3:04 PM"

var sunEventKeys = map[string]bool{
	"sunrise": true,
	"sunset":  true,
}

// CardEntry is one formatted row of the card
type CardEntry struct {
	Name string `json:"name" yaml:"name"`
	Time string `json:"time" yaml:"time"`
}

// Card is the presentation model of the prayer card
type Card struct {
	Location         string      `json:"location" yaml:"location"`
	CoordinatesLabel string      `json:"coordinates" yaml:"coordinates"`
	TimezoneLabel    string      `json:"timezone" yaml:"timezone"`
	SunEvents        []CardEntry `json:"sunEvents" yaml:"sunEvents"`
	Prayers          []CardEntry `json:"prayers" yaml:"prayers"`
}

// BuildCard formats the state for display in the override timezone, else detectedTZ, else UTC
func BuildCard(state State, detectedTZ string) (Card, error) {
	if state.Today == nil {
		return Card{}, errors.NewNotFoundError("no prayer timings loaded")
	}

	zone, loc := resolveZone(state.Timezone, detectedTZ)

	card := Card{
		Location:         state.Location,
		CoordinatesLabel: coordinatesLabel(state),
		TimezoneLabel:    zone,
		SunEvents:        []CardEntry{},
		Prayers:          []CardEntry{},
	}

	for _, entry := range state.Today.Prayers {
		row := CardEntry{
			Name: entry.Name,
			Time: time.UnixMilli(entry.Time).In(loc).Format(CardTimeLayout),
		}
		if sunEventKeys[entry.Key()] {
			card.SunEvents = append(card.SunEvents, row)
		} else {
			card.Prayers = append(card.Prayers, row)
		}
	}

	return card, nil
}

func resolveZone(override, detected string) (string, *time.Location) {
	for _, name := range []string{override, detected} {
		if name == "" {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return name, loc
		}
	}
	return "UTC", time.UTC
}

func coordinatesLabel(state State) string {
	if state.Cords != nil {
		return fmt.Sprintf("%.2f°, %.2f°", state.Cords.Lat, state.Cords.Lng)
	}
	return fmt.Sprintf("%s°, %s°", state.Today.Coordinates.Latitude, state.Today.Coordinates.Longitude)
}
