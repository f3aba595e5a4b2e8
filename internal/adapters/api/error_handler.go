package api

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/ports"
	errorspkg "prayertimes.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		c.JSON(statusCode, ErrorResponse{Error: message})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ExternalAPIError, errorspkg.FetchError, errorspkg.ParseError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.GeolocationDeniedError:
		statusCode = http.StatusServiceUnavailable
		message = "Location unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: results}
	for _, result := range results {
		if result.Status == "unhealthy" {
			response.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}
