package infrastructure

import (
	"context"

	"github.com/ghumash/WeatherApp/internal/core/weather"
	"github.com/ghumash/WeatherApp/internal/ports"
)

// BreakerState is implemented by gateways that can report a circuit breaker state
type BreakerState interface {
	State() string
}

// WeatherGatewayHealthChecker reports whether the weather gateway is usable
type WeatherGatewayHealthChecker struct {
	gateway ports.WeatherGateway
	breaker BreakerState
}

// NewWeatherGatewayHealthChecker creates a new gateway health checker. breaker may be nil.
func NewWeatherGatewayHealthChecker(gateway ports.WeatherGateway, breaker BreakerState) *WeatherGatewayHealthChecker {
	return &WeatherGatewayHealthChecker{gateway: gateway, breaker: breaker}
}

// Check does not call the provider; it reports configuration and breaker state only
func (w *WeatherGatewayHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherGateway",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if w.gateway == nil {
		status.Status = "unhealthy"
		status.Error = "weather gateway is not available"
		return status
	}
	status.Details["gateway"] = w.gateway.GetGatewayName()

	if w.breaker != nil {
		state := w.breaker.State()
		status.Details["circuit_breaker"] = state
		if state == "open" {
			status.Status = "degraded"
			status.Error = "circuit breaker is open"
		}
	}

	return status
}

// SessionReader is the part of the session the health check reads
type SessionReader interface {
	Snapshot() weather.Snapshot
}

// SessionHealthChecker reports the state of the lookup session
type SessionHealthChecker struct {
	session SessionReader
}

func NewSessionHealthChecker(session SessionReader) *SessionHealthChecker {
	return &SessionHealthChecker{session: session}
}

func (s *SessionHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	if s.session == nil {
		return ports.HealthStatus{
			Component: "session",
			Status:    "unhealthy",
			Error:     "session is not available",
		}
	}

	snapshot := s.session.Snapshot()
	return ports.HealthStatus{
		Component: "session",
		Status:    "healthy",
		Details: map[string]interface{}{
			"city":           snapshot.Query.CityName,
			"unit":           snapshot.Query.Unit.String(),
			"loading":        snapshot.IsLoading,
			"currentWeather": snapshot.CurrentWeather.Status().String(),
			"forecast":       snapshot.Forecast.Status().String(),
		},
	}
}
