package settings

import (
	"context"
	"fmt"

	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

// PrayerController is the part of the prayer manager the settings flow drives
type PrayerController interface {
	Refresh(lat, lng *float64) (*prayer.Cycle, bool)
	SetCords(cords ports.Coordinates)
	SetTimezone(timezone string)
	Snapshot() prayer.State
}

type UseCase struct {
	store     ports.SessionStore
	geocoder  ports.GeocodingGateway
	prayer    PrayerController
	timezones ports.TimezoneDetector
	logger    ports.Logger
}

type UseCaseDependencies struct {
	Store     ports.SessionStore
	Geocoder  ports.GeocodingGateway
	Prayer    PrayerController
	Timezones ports.TimezoneDetector
	Logger    ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("session store is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoding gateway is required")
	}
	if deps.Prayer == nil {
		return nil, errors.NewValidationError("prayer controller is required")
	}
	if deps.Timezones == nil {
		return nil, errors.NewValidationError("timezone detector is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:     deps.Store,
		geocoder:  deps.Geocoder,
		prayer:    deps.Prayer,
		timezones: deps.Timezones,
		logger:    deps.Logger,
	}, nil
}

// Load returns the stored form, or defaults derived from the current prayer state
func (uc *UseCase) Load(ctx context.Context) (LocationSettings, error) {
	var stored LocationSettings
	found, err := uc.store.Load(ctx, ports.SessionKeySettings, &stored)
	if err != nil {
		return LocationSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if found {
		return stored, nil
	}

	state := uc.prayer.Snapshot()
	defaults := LocationSettings{Timezone: state.Timezone}
	if state.Cords != nil {
		defaults = withPosition(defaults, *state.Cords)
	}
	if defaults.Timezone == "" {
		defaults.Timezone = uc.timezones.DetectTimezone()
	}
	return defaults, nil
}

// Save persists the form for the session
func (uc *UseCase) Save(ctx context.Context, form LocationSettings) error {
	if err := uc.store.Store(ctx, ports.SessionKeySettings, form); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// GeocodeAddress fills the coordinates from the address; lookup failures leave the form unchanged
func (uc *UseCase) GeocodeAddress(ctx context.Context, form LocationSettings) (LocationSettings, error) {
	form = form.Normalize()
	if form.Address == "" {
		return form, nil
	}

	position, err := uc.geocoder.SearchAddress(ctx, form.Address)
	if err != nil {
		uc.logger.Warn("Address lookup failed",
			ports.F("address", form.Address),
			ports.F("error", err))
		return form, nil
	}

	updated := withPosition(form, position)
	if err := uc.Save(ctx, updated); err != nil {
		return LocationSettings{}, err
	}

	uc.logger.Debug("Address resolved",
		ports.F("address", form.Address),
		ports.F("latitude", updated.Latitude),
		ports.F("longitude", updated.Longitude))
	return updated, nil
}

// CanSave reports whether the form may be submitted
func (uc *UseCase) CanSave(form LocationSettings) bool {
	return form.Normalize().CanSave()
}

// Submit applies the form: refresh for its position, override the coordinates and timezone, and save it
func (uc *UseCase) Submit(ctx context.Context, form LocationSettings) (*prayer.Cycle, error) {
	form = form.Normalize()

	lat, lng, ok := form.Coordinates()
	if !ok {
		return nil, errors.NewValidationError("latitude and longitude must be numbers")
	}
	if !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lng) {
		return nil, errors.NewValidationError("coordinates are out of range")
	}
	if form.Timezone != "" && !validation.IsValidTimezone(form.Timezone) {
		return nil, errors.NewValidationError("unknown timezone: " + form.Timezone)
	}

	cycle, _ := uc.prayer.Refresh(&lat, &lng)
	uc.prayer.SetCords(ports.Coordinates{Lat: lat, Lng: lng})
	uc.prayer.SetTimezone(form.Timezone)

	if err := uc.Save(ctx, form); err != nil {
		return cycle, err
	}

	uc.logger.Info("Location settings applied",
		ports.F("latitude", lat),
		ports.F("longitude", lng),
		ports.F("timezone", form.Timezone))
	return cycle, nil
}

// TimezoneOptions lists the detected zone first, followed by the other known zones
func (uc *UseCase) TimezoneOptions() []string {
	detected := uc.timezones.DetectTimezone()
	known := uc.timezones.KnownTimezones()
	if len(known) == 0 {
		known = FallbackTimezones
	}

	options := make([]string, 0, len(known)+1)
	if detected != "" {
		options = append(options, detected)
	}
	for _, zone := range known {
		if zone != detected {
			options = append(options, zone)
		}
	}
	return options
}

// Theme reports whether the dark theme is selected; light is the default
func (uc *UseCase) Theme(ctx context.Context) (bool, error) {
	var dark bool
	if _, err := uc.store.Load(ctx, ports.SessionKeyTheme, &dark); err != nil {
		return false, fmt.Errorf("load theme: %w", err)
	}
	return dark, nil
}

func (uc *UseCase) SetTheme(ctx context.Context, dark bool) error {
	if err := uc.store.Store(ctx, ports.SessionKeyTheme, dark); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
