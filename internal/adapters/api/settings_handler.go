package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/settings"
	"prayertimes.app/pkg/errors"
)

// SettingsRequest is the settings form as posted by the client
type SettingsRequest struct {
	Address   string `json:"address"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Timezone  string `json:"timezone" binding:"omitempty,timezone"`
}

func (r SettingsRequest) toForm() settings.LocationSettings {
	return settings.LocationSettings{
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
	}
}

// SettingsResponse is the stored form plus whether it can be submitted
type SettingsResponse struct {
	settings.LocationSettings
	CanSave bool `json:"canSave"`
}

// SubmitResponse describes the refresh started by a settings submission
type SubmitResponse struct {
	Settings settings.LocationSettings `json:"settings"`
	CycleID  uint64                    `json:"cycleId"`
}

// ThemeRequest selects the dark or light theme
type ThemeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}

// ThemeResponse reports the selected theme
type ThemeResponse struct {
	Dark bool `json:"dark"`
}

// TimezonesResponse lists the selectable timezones, detected zone first
type TimezonesResponse struct {
	Timezones []string `json:"timezones"`
}

// getSettings handles GET /api/settings requests
func (s *HTTPServerAdapter) getSettings(c *gin.Context) {
	form, err := s.settingsUseCase.Load(c.Request.Context())
	if err != nil {
		slog.Error("Settings load error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{LocationSettings: form, CanSave: form.CanSave()})
}

// saveSettings handles PUT /api/settings requests
func (s *HTTPServerAdapter) saveSettings(c *gin.Context) {
	form, ok := s.bindSettings(c)
	if !ok {
		return
	}

	if err := s.settingsUseCase.Save(c.Request.Context(), form); err != nil {
		slog.Error("Settings save error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{LocationSettings: form, CanSave: form.CanSave()})
}

// geocodeAddress handles POST /api/settings/geocode requests
func (s *HTTPServerAdapter) geocodeAddress(c *gin.Context) {
	form, ok := s.bindSettings(c)
	if !ok {
		return
	}

	updated, err := s.settingsUseCase.GeocodeAddress(c.Request.Context(), form)
	if err != nil {
		slog.Error("Address geocoding error", "error", err, "address", form.Address)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{LocationSettings: updated, CanSave: updated.CanSave()})
}

// submitSettings handles POST /api/settings/submit requests
func (s *HTTPServerAdapter) submitSettings(c *gin.Context) {
	form, ok := s.bindSettings(c)
	if !ok {
		return
	}

	cycle, err := s.settingsUseCase.Submit(c.Request.Context(), form)
	if err != nil {
		slog.Error("Settings submit error", "error", err)
		s.handleError(c, err)
		return
	}
	if cycle == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Prayer service unavailable"})
		return
	}

	if waitRequested(c) {
		s.respondWithCycle(c, cycle)
		return
	}

	c.JSON(http.StatusAccepted, SubmitResponse{Settings: form.Normalize(), CycleID: cycle.ID()})
}

// getTimezones handles GET /api/settings/timezones requests
func (s *HTTPServerAdapter) getTimezones(c *gin.Context) {
	c.JSON(http.StatusOK, TimezonesResponse{Timezones: s.settingsUseCase.TimezoneOptions()})
}

// getTheme handles GET /api/theme requests
func (s *HTTPServerAdapter) getTheme(c *gin.Context) {
	dark, err := s.settingsUseCase.Theme(c.Request.Context())
	if err != nil {
		slog.Error("Theme load error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Dark: dark})
}

// setTheme handles PUT /api/theme requests
func (s *HTTPServerAdapter) setTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	if err := s.settingsUseCase.SetTheme(c.Request.Context(), *req.Dark); err != nil {
		slog.Error("Theme save error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ThemeResponse{Dark: *req.Dark})
}

func (s *HTTPServerAdapter) bindSettings(c *gin.Context) (settings.LocationSettings, bool) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return settings.LocationSettings{}, false
	}
	return req.toForm(), true
}
