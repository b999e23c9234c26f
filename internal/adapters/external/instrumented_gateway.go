package external

import (
	"context"
	"time"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

const (
	OperationCurrentWeather = "current_weather"
	OperationForecast       = "forecast"
)

// InstrumentedGateway reports every gateway call to the metrics collector.
// Provider rejections count as successful calls.
type InstrumentedGateway struct {
	gateway ports.WeatherGateway
	metrics ports.MetricsCollector
}

func NewInstrumentedGateway(gateway ports.WeatherGateway, metrics ports.MetricsCollector) *InstrumentedGateway {
	return &InstrumentedGateway{
		gateway: gateway,
		metrics: metrics,
	}
}

func (g *InstrumentedGateway) FetchCurrentWeather(ctx context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
	start := time.Now()
	data, err := g.gateway.FetchCurrentWeather(ctx, city, unit)
	g.metrics.RecordGatewayCall(ctx, OperationCurrentWeather, succeeded(err), time.Since(start))
	return data, err
}

func (g *InstrumentedGateway) FetchForecast(ctx context.Context, coords ports.Coordinates, unit string) ([]ports.ForecastEntryData, error) {
	start := time.Now()
	entries, err := g.gateway.FetchForecast(ctx, coords, unit)
	g.metrics.RecordGatewayCall(ctx, OperationForecast, succeeded(err), time.Since(start))
	return entries, err
}

func (g *InstrumentedGateway) GetGatewayName() string {
	return g.gateway.GetGatewayName()
}

func succeeded(err error) bool {
	return err == nil || errors.IsProviderError(err)
}

var _ ports.WeatherGateway = (*InstrumentedGateway)(nil)
