package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

// CircuitBreakerSettings configures the breaker in front of the gateway
type CircuitBreakerSettings struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// DefaultCircuitBreakerSettings returns the settings used by the application
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		MaxRequests:         5,
		Interval:            1 * time.Minute,
		Timeout:             2 * time.Minute,
		ConsecutiveFailures: 5,
	}
}

// CircuitBreakerGateway fails fast while the provider keeps failing.
// Provider rejections such as an unknown city count as successful calls.
type CircuitBreakerGateway struct {
	gateway ports.WeatherGateway
	circuit *gobreaker.CircuitBreaker
	logger  ports.Logger
}

// NewCircuitBreakerGateway creates a new circuit breaker around a gateway
func NewCircuitBreakerGateway(gateway ports.WeatherGateway, settings CircuitBreakerSettings, logger ports.Logger) *CircuitBreakerGateway {
	g := &CircuitBreakerGateway{
		gateway: gateway,
		logger:  logger,
	}

	threshold := settings.ConsecutiveFailures
	if threshold == 0 {
		threshold = 1
	}

	g.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        gateway.GetGatewayName(),
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsProviderError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				ports.F("gateway", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return g
}

func (g *CircuitBreakerGateway) FetchCurrentWeather(ctx context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
	result, err := g.circuit.Execute(func() (interface{}, error) {
		return g.gateway.FetchCurrentWeather(ctx, city, unit)
	})
	if err != nil {
		return nil, g.translate(err)
	}
	return result.(*ports.CurrentWeatherData), nil
}

func (g *CircuitBreakerGateway) FetchForecast(ctx context.Context, coords ports.Coordinates, unit string) ([]ports.ForecastEntryData, error) {
	result, err := g.circuit.Execute(func() (interface{}, error) {
		return g.gateway.FetchForecast(ctx, coords, unit)
	})
	if err != nil {
		return nil, g.translate(err)
	}
	return result.([]ports.ForecastEntryData), nil
}

func (g *CircuitBreakerGateway) GetGatewayName() string {
	return g.gateway.GetGatewayName()
}

// State returns the breaker state name, used by health checks
func (g *CircuitBreakerGateway) State() string {
	return g.circuit.State().String()
}

func (g *CircuitBreakerGateway) translate(err error) error {
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewExternalAPIError("weather provider temporarily unavailable", err)
	}
	return err
}

var _ ports.WeatherGateway = (*CircuitBreakerGateway)(nil)
