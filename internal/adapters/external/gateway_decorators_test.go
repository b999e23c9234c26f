package external

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghumash/WeatherApp/internal/mocks"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

func TestGatewayLoggingDecorator_CurrentWeather(t *testing.T) {
	gateway := newNamedGateway(t, "test-gateway")
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "TestCity", "metric").
		Return(&ports.CurrentWeatherData{Temperature: 22.0, Humidity: 55.0, Description: "Test weather"}, nil).
		Once()

	var requestLog, responseLog map[string]interface{}
	logger := mocks.NewLogger(t)
	logger.EXPECT().Info("Current weather request started", mock.Anything).RunAndReturn(captureFields(&requestLog)).Once()
	logger.EXPECT().Info("Current weather request completed", mock.Anything).RunAndReturn(captureFields(&responseLog)).Once()

	decorator := NewGatewayLoggingDecorator(gateway, logger)
	result, err := decorator.FetchCurrentWeather(context.Background(), "TestCity", "metric")

	require.NoError(t, err)
	assert.Equal(t, 22.0, result.Temperature)

	assert.Equal(t, "test-gateway", requestLog["gateway"])
	assert.Equal(t, "TestCity", requestLog["city"])
	assert.Equal(t, "metric", requestLog["unit"])
	assert.Equal(t, "request", requestLog["event"])

	assert.Equal(t, "response", responseLog["event"])
	assert.Equal(t, 22.0, responseLog["temperature"])
	assert.Equal(t, 55.0, responseLog["humidity"])
	assert.Equal(t, "Test weather", responseLog["description"])
	assert.Contains(t, responseLog, "duration_ms")

	assert.Equal(t, "logged(test-gateway)", decorator.GetGatewayName())
}

func TestGatewayLoggingDecorator_ErrorHandling(t *testing.T) {
	gateway := newNamedGateway(t, "error-gateway")
	gateway.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{Latitude: 1, Longitude: 2}, "metric").
		Return(nil, stderrors.New("connection reset")).
		Once()

	var errorLog map[string]interface{}
	logger := mocks.NewLogger(t)
	logger.EXPECT().Info("Forecast request started", mock.Anything).Once()
	logger.EXPECT().Error("Forecast request failed", mock.Anything).RunAndReturn(captureFields(&errorLog)).Once()

	decorator := NewGatewayLoggingDecorator(gateway, logger)
	result, err := decorator.FetchForecast(context.Background(), ports.Coordinates{Latitude: 1, Longitude: 2}, "metric")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, "connection reset", err.Error())

	assert.Equal(t, "error", errorLog["event"])
	assert.Equal(t, 1.0, errorLog["latitude"])
	assert.Equal(t, "connection reset", errorLog["error"])
	assert.Contains(t, errorLog, "duration_ms")
}

// Provider rejections are expected outcomes of user input and are logged below error level.
func TestGatewayLoggingDecorator_ProviderRejectionLoggedAtInfo(t *testing.T) {
	rejection := errors.NewProviderError("city not found")

	tests := []struct {
		name    string
		started string
		message string
		call    func(ports.WeatherGateway) error
		expect  func(*mocks.WeatherGateway)
	}{
		{
			name:    "current weather",
			started: "Current weather request started",
			message: "Current weather request rejected",
			call: func(g ports.WeatherGateway) error {
				_, err := g.FetchCurrentWeather(context.Background(), "Atlantis", "metric")
				return err
			},
			expect: func(g *mocks.WeatherGateway) {
				g.EXPECT().FetchCurrentWeather(mock.Anything, "Atlantis", "metric").Return(nil, rejection).Once()
			},
		},
		{
			name:    "forecast",
			started: "Forecast request started",
			message: "Forecast request rejected",
			call: func(g ports.WeatherGateway) error {
				_, err := g.FetchForecast(context.Background(), ports.Coordinates{}, "metric")
				return err
			},
			expect: func(g *mocks.WeatherGateway) {
				g.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{}, "metric").Return(nil, rejection).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newNamedGateway(t, "owm")
			tt.expect(gateway)

			var rejectionLog map[string]interface{}
			logger := mocks.NewLogger(t)
			logger.EXPECT().Info(tt.started, mock.Anything).Once()
			logger.EXPECT().Info(tt.message, mock.Anything).RunAndReturn(captureFields(&rejectionLog)).Once()

			err := tt.call(NewGatewayLoggingDecorator(gateway, logger))

			require.Error(t, err)
			assert.True(t, errors.IsProviderError(err))
			assert.Equal(t, "rejection", rejectionLog["event"])
			assert.Equal(t, "city not found", rejectionLog["message"])
			logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
		})
	}
}

func TestGatewayLoggingDecorator_ForecastEntryCount(t *testing.T) {
	gateway := newNamedGateway(t, "test-gateway")
	gateway.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{}, "imperial").
		Return(make([]ports.ForecastEntryData, 40), nil).
		Once().
		After(10 * time.Millisecond)

	var responseLog map[string]interface{}
	logger := mocks.NewLogger(t)
	logger.EXPECT().Info("Forecast request started", mock.Anything).Once()
	logger.EXPECT().Info("Forecast request completed", mock.Anything).RunAndReturn(captureFields(&responseLog)).Once()

	_, err := NewGatewayLoggingDecorator(gateway, logger).FetchForecast(context.Background(), ports.Coordinates{}, "imperial")

	require.NoError(t, err)
	assert.Equal(t, 40, responseLog["entries"])
	assert.GreaterOrEqual(t, responseLog["duration_ms"], int64(10))
}

func TestRateLimitedGateway_ForwardsWithinBudget(t *testing.T) {
	gateway := newNamedGateway(t, "owm")
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Paris", "metric").
		Return(&ports.CurrentWeatherData{Name: "Paris"}, nil).
		Times(2)
	limited := NewRateLimitedGateway(gateway, 100, 2)

	for i := 0; i < 2; i++ {
		data, err := limited.FetchCurrentWeather(context.Background(), "Paris", "metric")
		require.NoError(t, err)
		assert.Equal(t, "Paris", data.Name)
	}

	assert.Equal(t, "owm [Rate Limited]", limited.GetGatewayName())
}

func TestRateLimitedGateway_ContextDeadlineWhileWaiting(t *testing.T) {
	gateway := newNamedGateway(t, "owm")
	gateway.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{}, "metric").
		Return([]ports.ForecastEntryData{{Timestamp: "2024-01-01 12:00:00"}}, nil).
		Once()
	limited := NewRateLimitedGateway(gateway, 0.1, 1)

	_, err := limited.FetchForecast(context.Background(), ports.Coordinates{}, "metric")
	require.NoError(t, err)

	// the burst is spent and the next token is ten seconds away
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = limited.FetchForecast(ctx, ports.Coordinates{}, "metric")

	require.Error(t, err)
	assert.True(t, errors.IsRateLimitError(err))
	gateway.AssertNumberOfCalls(t, "FetchForecast", 1)
}

func TestCircuitBreakerGateway_OpensAfterConsecutiveFailures(t *testing.T) {
	gateway := newNamedGateway(t, "owm")
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Paris", "metric").
		Return(nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", stderrors.New("timeout"))).
		Times(3)

	logger := mocks.NewLogger(t)
	logger.EXPECT().Warn("Circuit breaker state changed", mock.MatchedBy(func(fields []ports.Field) bool {
		return fieldMap(fields)["to"] == "open"
	})).Once()

	breaker := NewCircuitBreakerGateway(gateway, CircuitBreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 3,
	}, logger)

	for i := 0; i < 3; i++ {
		_, err := breaker.FetchCurrentWeather(context.Background(), "Paris", "metric")
		require.Error(t, err)
		assert.Equal(t, "failed to call OpenWeatherMap", errors.MessageOf(err))
	}
	assert.Equal(t, "open", breaker.State())

	_, err := breaker.FetchForecast(context.Background(), ports.Coordinates{}, "metric")
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, "weather provider temporarily unavailable", errors.MessageOf(err))
	gateway.AssertNotCalled(t, "FetchForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestCircuitBreakerGateway_ProviderRejectionsDoNotTrip(t *testing.T) {
	gateway := newNamedGateway(t, "owm")
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Atlantis", "metric").
		Return(nil, errors.NewProviderError("city not found")).
		Times(5)

	breaker := NewCircuitBreakerGateway(gateway, CircuitBreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 2,
	}, mocks.NewLogger(t))

	for i := 0; i < 5; i++ {
		_, err := breaker.FetchCurrentWeather(context.Background(), "Atlantis", "metric")
		require.Error(t, err)
		assert.True(t, errors.IsProviderError(err))
	}

	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreakerGateway_PassesResultsThrough(t *testing.T) {
	gateway := newNamedGateway(t, "owm")
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Tokyo", "metric").
		Return(&ports.CurrentWeatherData{Name: "Tokyo"}, nil).
		Once()
	gateway.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{}, "metric").
		Return([]ports.ForecastEntryData{{Timestamp: "2024-01-01 12:00:00"}}, nil).
		Once()
	breaker := NewCircuitBreakerGateway(gateway, DefaultCircuitBreakerSettings(), newQuietLogger(t))

	data, err := breaker.FetchCurrentWeather(context.Background(), "Tokyo", "metric")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", data.Name)

	entries, err := breaker.FetchForecast(context.Background(), ports.Coordinates{}, "metric")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "owm", breaker.GetGatewayName())
}

func TestInstrumentedGateway_RecordsCalls(t *testing.T) {
	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordGatewayCall(mock.Anything, OperationCurrentWeather, true, mock.Anything).Times(2)
	metrics.EXPECT().RecordGatewayCall(mock.Anything, OperationForecast, false, mock.Anything).Once()

	okGateway := newNamedGateway(t, "owm")
	okGateway.EXPECT().FetchCurrentWeather(mock.Anything, "Paris", "metric").Return(&ports.CurrentWeatherData{}, nil).Once()
	ok := NewInstrumentedGateway(okGateway, metrics)
	_, err := ok.FetchCurrentWeather(context.Background(), "Paris", "metric")
	require.NoError(t, err)

	rejectingGateway := newNamedGateway(t, "owm")
	rejectingGateway.EXPECT().FetchCurrentWeather(mock.Anything, "Atlantis", "metric").
		Return(nil, errors.NewProviderError("city not found")).Once()
	rejected := NewInstrumentedGateway(rejectingGateway, metrics)
	_, err = rejected.FetchCurrentWeather(context.Background(), "Atlantis", "metric")
	require.Error(t, err)

	failingGateway := newNamedGateway(t, "owm")
	failingGateway.EXPECT().FetchForecast(mock.Anything, ports.Coordinates{}, "metric").
		Return(nil, errors.NewExternalAPIError("Request failed with status code 500", nil)).Once()
	failing := NewInstrumentedGateway(failingGateway, metrics)
	_, err = failing.FetchForecast(context.Background(), ports.Coordinates{}, "metric")
	require.Error(t, err)

	assert.Equal(t, "owm", failing.GetGatewayName())
}
