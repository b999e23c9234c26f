package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghumash/WeatherApp/internal/adapters/external"
	"github.com/ghumash/WeatherApp/internal/adapters/infrastructure"
	"github.com/ghumash/WeatherApp/internal/core/weather"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

func newMockGateway(t *testing.T, apiKey string) *external.OpenWeatherMapGateway {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixed := time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC)
	server := httptest.NewServer(newRouter(func() time.Time { return fixed }))
	t.Cleanup(server.Close)

	return external.NewOpenWeatherMapGateway(external.OpenWeatherMapGatewayParams{
		APIKey:  apiKey,
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Logger:  infrastructure.NewSlogLoggerAdapter(nil),
	})
}

func TestMockServer_CurrentAndForecast(t *testing.T) {
	gateway := newMockGateway(t, "key")
	ctx := context.Background()

	current, err := gateway.FetchCurrentWeather(ctx, "Paris", "metric")
	require.NoError(t, err)
	assert.Equal(t, "Paris", current.Name)
	assert.Equal(t, 18.0, current.Temperature)

	forecast, err := gateway.FetchForecast(ctx, current.Coordinates, "metric")
	require.NoError(t, err)
	require.Len(t, forecast, forecastSlots)
	assert.Equal(t, "2024-06-03 09:00:00", forecast[0].Timestamp)

	entries := make([]weather.ForecastEntry, 0, len(forecast))
	for _, f := range forecast {
		entries = append(entries, weather.ForecastEntry{Timestamp: f.Timestamp, MaxTemp: f.TempMax, MinTemp: f.TempMin})
	}
	assert.Len(t, weather.SampleDaily(entries), 5)
}

func TestMockServer_ImperialUnits(t *testing.T) {
	gateway := newMockGateway(t, "key")

	current, err := gateway.FetchCurrentWeather(context.Background(), "yerevan", "imperial")
	require.NoError(t, err)
	assert.InDelta(t, 75.2, current.Temperature, 0.001)
}

func TestMockServer_Rejections(t *testing.T) {
	ctx := context.Background()

	_, err := newMockGateway(t, "key").FetchCurrentWeather(ctx, "Atlantis", "metric")
	require.Error(t, err)
	assert.True(t, errors.IsProviderError(err))
	assert.Equal(t, "city not found", errors.MessageOf(err))

	_, err = newMockGateway(t, "").FetchCurrentWeather(ctx, "Paris", "metric")
	assert.True(t, errors.IsProviderError(err))

	_, err = newMockGateway(t, "key").FetchForecast(ctx, ports.Coordinates{Latitude: 1, Longitude: 1}, "metric")
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "Request failed with status code 404")
}
