package external

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

// RateLimitedGateway wraps a WeatherGateway with a shared request budget.
// Both operations draw from the same limiter since they share one API key.
type RateLimitedGateway struct {
	gateway ports.WeatherGateway
	limiter *rate.Limiter
}

// NewRateLimitedGateway creates a new rate limited gateway.
// rps may be fractional for less than one request per second.
func NewRateLimitedGateway(gateway ports.WeatherGateway, rps float64, burst int) *RateLimitedGateway {
	return &RateLimitedGateway{
		gateway: gateway,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FetchCurrentWeather waits for limiter permission or context cancellation, then forwards
func (r *RateLimitedGateway) FetchCurrentWeather(ctx context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewRateLimitError("rate limit wait canceled", err)
	}
	return r.gateway.FetchCurrentWeather(ctx, city, unit)
}

// FetchForecast waits for limiter permission or context cancellation, then forwards
func (r *RateLimitedGateway) FetchForecast(ctx context.Context, coords ports.Coordinates, unit string) ([]ports.ForecastEntryData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewRateLimitError("rate limit wait canceled", err)
	}
	return r.gateway.FetchForecast(ctx, coords, unit)
}

func (r *RateLimitedGateway) GetGatewayName() string {
	return r.gateway.GetGatewayName() + " [Rate Limited]"
}

var _ ports.WeatherGateway = (*RateLimitedGateway)(nil)
