package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	errorspkg "github.com/ghumash/WeatherApp/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ProviderError:
		statusCode = http.StatusBadGateway
		message = appErr.Message
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.RateLimitError:
		statusCode = http.StatusTooManyRequests
		message = "Too many requests"
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

	snapshot := s.session.Snapshot()
	metrics["session"] = gin.H{
		"city":      snapshot.Query.CityName,
		"unit":      snapshot.Query.Unit.String(),
		"isLoading": snapshot.IsLoading,
	}

	c.JSON(http.StatusOK, metrics)
}
