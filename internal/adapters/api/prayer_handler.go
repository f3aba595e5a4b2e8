package api

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// RefreshRequest carries an optional position; a refresh only starts when both are set
type RefreshRequest struct {
	Lat *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

// RefreshResponse describes the cycle started by a refresh
type RefreshResponse struct {
	Started bool            `json:"started"`
	CycleID uint64          `json:"cycleId,omitempty"`
	Outcome *prayer.Outcome `json:"outcome,omitempty"`
	State   prayer.State    `json:"state"`
}

// CordsRequest overrides the displayed coordinates
type CordsRequest struct {
	Lat *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" binding:"required,min=-180,max=180"`
}

// TimezoneRequest overrides the display timezone; "" restores the detected zone
type TimezoneRequest struct {
	Timezone string `json:"timezone" binding:"omitempty,timezone"`
}

// LoadingResponse is returned while the first timings are still in flight
type LoadingResponse struct {
	Loading bool   `json:"loading"`
	CycleID uint64 `json:"cycleId"`
}

// getPrayer handles GET /api/prayer requests
func (s *HTTPServerAdapter) getPrayer(c *gin.Context) {
	c.JSON(http.StatusOK, s.prayer.Snapshot())
}

// getCard handles GET /api/prayer/card requests
func (s *HTTPServerAdapter) getCard(c *gin.Context) {
	state := s.prayer.Snapshot()

	if state.Loading {
		c.JSON(http.StatusAccepted, LoadingResponse{Loading: true, CycleID: state.CycleID})
		return
	}
	if state.HasError() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: state.Error})
		return
	}

	card, err := prayer.BuildCard(state, s.timezones.DetectTimezone())
	if err != nil {
		slog.Debug("Card requested before timings loaded", "error", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Prayer timings unavailable"})
		return
	}

	c.JSON(http.StatusOK, card)
}

// refresh handles POST /api/prayer/refresh requests
func (s *HTTPServerAdapter) refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	cycle, started := s.prayer.Refresh(req.Lat, req.Lng)
	if !started {
		c.JSON(http.StatusOK, RefreshResponse{Started: false, State: s.prayer.Snapshot()})
		return
	}

	if !waitRequested(c) {
		c.JSON(http.StatusAccepted, RefreshResponse{
			Started: true,
			CycleID: cycle.ID(),
			State:   s.prayer.Snapshot(),
		})
		return
	}

	s.respondWithCycle(c, cycle)
}

// setCords handles PUT /api/prayer/cords requests
func (s *HTTPServerAdapter) setCords(c *gin.Context) {
	var req CordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	s.prayer.SetCords(ports.Coordinates{Lat: *req.Lat, Lng: *req.Lng})
	c.JSON(http.StatusOK, s.prayer.Snapshot())
}

// setTimezone handles PUT /api/prayer/timezone requests
func (s *HTTPServerAdapter) setTimezone(c *gin.Context) {
	var req TimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid timezone"))
		return
	}

	s.prayer.SetTimezone(req.Timezone)
	c.JSON(http.StatusOK, s.prayer.Snapshot())
}

// respondWithCycle blocks until the cycle finishes or the client goes away
func (s *HTTPServerAdapter) respondWithCycle(c *gin.Context, cycle *prayer.Cycle) {
	result, err := cycle.Wait(c.Request.Context())
	if err != nil {
		slog.Debug("Client stopped waiting for cycle", "cycle", cycle.ID(), "error", err)
		c.Status(http.StatusRequestTimeout)
		return
	}

	outcome := result.Outcome
	c.JSON(http.StatusOK, RefreshResponse{
		Started: true,
		CycleID: cycle.ID(),
		Outcome: &outcome,
		State:   s.prayer.Snapshot(),
	})
}

func waitRequested(c *gin.Context) bool {
	wait, err := strconv.ParseBool(c.DefaultQuery("wait", "false"))
	return err == nil && wait
}
