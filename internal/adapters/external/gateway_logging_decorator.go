package external

import (
	"context"
	"time"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

// GatewayLoggingDecorator decorates a weather gateway with structured logging
type GatewayLoggingDecorator struct {
	gateway ports.WeatherGateway
	logger  ports.Logger
}

// NewGatewayLoggingDecorator creates a new logging decorator for a weather gateway
func NewGatewayLoggingDecorator(gateway ports.WeatherGateway, logger ports.Logger) ports.WeatherGateway {
	return &GatewayLoggingDecorator{
		gateway: gateway,
		logger:  logger,
	}
}

// FetchCurrentWeather wraps the gateway call with structured logging
func (d *GatewayLoggingDecorator) FetchCurrentWeather(ctx context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
	gatewayName := d.gateway.GetGatewayName()

	d.logger.Info("Current weather request started",
		ports.F("gateway", gatewayName),
		ports.F("city", city),
		ports.F("unit", unit),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.gateway.FetchCurrentWeather(ctx, city, unit)
	duration := time.Since(startTime)

	if errors.IsProviderError(err) {
		d.logger.Info("Current weather request rejected",
			ports.F("gateway", gatewayName),
			ports.F("city", city),
			ports.F("event", "rejection"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("message", errors.MessageOf(err)))
		return nil, err
	}
	if err != nil {
		d.logger.Error("Current weather request failed",
			ports.F("gateway", gatewayName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Current weather request completed",
		ports.F("gateway", gatewayName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", data.Temperature),
		ports.F("humidity", data.Humidity),
		ports.F("description", data.Description))

	return data, nil
}

// FetchForecast wraps the gateway call with structured logging
func (d *GatewayLoggingDecorator) FetchForecast(ctx context.Context, coords ports.Coordinates, unit string) ([]ports.ForecastEntryData, error) {
	gatewayName := d.gateway.GetGatewayName()

	d.logger.Info("Forecast request started",
		ports.F("gateway", gatewayName),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude),
		ports.F("unit", unit),
		ports.F("event", "request"))

	startTime := time.Now()
	entries, err := d.gateway.FetchForecast(ctx, coords, unit)
	duration := time.Since(startTime)

	if errors.IsProviderError(err) {
		d.logger.Info("Forecast request rejected",
			ports.F("gateway", gatewayName),
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude),
			ports.F("event", "rejection"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("message", errors.MessageOf(err)))
		return nil, err
	}
	if err != nil {
		d.logger.Error("Forecast request failed",
			ports.F("gateway", gatewayName),
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast request completed",
		ports.F("gateway", gatewayName),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("entries", len(entries)))

	return entries, nil
}

// GetGatewayName returns the name of the wrapped gateway with logging indication
func (d *GatewayLoggingDecorator) GetGatewayName() string {
	return "logged(" + d.gateway.GetGatewayName() + ")"
}
