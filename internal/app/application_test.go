package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghumash/WeatherApp/internal/config"
	"github.com/ghumash/WeatherApp/internal/mocks"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

func yerevanForecast() []ports.ForecastEntryData {
	return []ports.ForecastEntryData{
		{Timestamp: "2024-06-03 09:00:00", TempMax: 22, TempMin: 17, Description: "few clouds"},
		{Timestamp: "2024-06-03 12:00:00", TempMax: 25, TempMin: 18, Description: "clear sky"},
		{Timestamp: "2024-06-04 09:00:00", TempMax: 23, TempMin: 16, Description: "light rain"},
	}
}

// newStubGateway knows Yerevan only. Expectations added by the caller take precedence.
func newStubGateway(t *testing.T) *mocks.WeatherGateway {
	gateway := mocks.NewWeatherGateway(t)
	gateway.EXPECT().GetGatewayName().Return("stub").Maybe()
	return gateway
}

func yerevanGateway(t *testing.T) *mocks.WeatherGateway {
	gateway := newStubGateway(t)
	serveYerevan(gateway)
	return gateway
}

func serveYerevan(gateway *mocks.WeatherGateway) {
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Yerevan", mock.Anything).
		RunAndReturn(func(_ context.Context, city string, unit string) (*ports.CurrentWeatherData, error) {
			return &ports.CurrentWeatherData{
				Temperature: 21,
				Description: "clear sky (" + unit + ")",
				Name:        city,
				Coordinates: ports.Coordinates{Latitude: 40.18, Longitude: 44.51},
			}, nil
		}).Maybe()
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.NewProviderError("city not found")).Maybe()
	gateway.EXPECT().FetchForecast(mock.Anything, mock.Anything, mock.Anything).
		Return(yerevanForecast(), nil).Maybe()
}

// blockUntilCancelled makes the next Yerevan lookup hang until the session aborts it.
// The returned channel is closed once the lookup is in flight.
func blockUntilCancelled(gateway *mocks.WeatherGateway) <-chan struct{} {
	inFlight := make(chan struct{})
	gateway.EXPECT().FetchCurrentWeather(mock.Anything, "Yerevan", "metric").
		RunAndReturn(func(ctx context.Context, _ string, _ string) (*ports.CurrentWeatherData, error) {
			close(inFlight)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()
	return inFlight
}

func testAppConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			APIKey:                "test-key",
			BaseURL:               "https://api.openweathermap.org",
			RequestTimeoutSeconds: 5,
			RateLimitRPS:          100,
			RateLimitBurst:        100,
			EnableCircuitBreaker:  true,
			EnableLogging:         true,
			LogFilePath:           filepath.Join(t.TempDir(), "gateway.log"),
		},
		Session:    config.SessionConfig{DefaultCity: "Yerevan", DefaultUnit: "metric"},
		Log:        config.LogConfig{Level: "error"},
		AppBaseURL: "http://localhost:8080",
	}
}

func newTestApplication(t *testing.T, cfg *config.Config, gateway ports.WeatherGateway) *Application {
	t.Helper()

	deps, err := NewDependencyContainer(cfg, DependencyOptions{
		Gateway:  gateway,
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })
	return application
}

// startApplication runs Start on an ephemeral port and returns once the initial
// fetch cycle has been started and the listener is bound.
func startApplication(t *testing.T, ctx context.Context, application *Application) (string, <-chan error) {
	t.Helper()

	startErr := make(chan error, 1)
	go func() { startErr <- application.Start(ctx) }()

	require.Eventually(t, func() bool {
		return application.Addr() != nil
	}, 2*time.Second, 5*time.Millisecond)

	port := application.Addr().(*net.TCPAddr).Port
	return fmt.Sprintf("127.0.0.1:%d", port), startErr
}

func waitInFlight(t *testing.T, inFlight <-chan struct{}) {
	t.Helper()
	select {
	case <-inFlight:
	case <-time.After(2 * time.Second):
		t.Fatal("initial lookup was not issued")
	}
}

func waitStart(t *testing.T, startErr <-chan error) error {
	t.Helper()
	select {
	case err := <-startErr:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return")
		return nil
	}
}

func TestDependencyContainer_DecoratorChain(t *testing.T) {
	deps, err := NewDependencyContainer(testAppConfig(t), DependencyOptions{
		Gateway:  newStubGateway(t),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	defer deps.Cleanup()

	gateway := deps.ApplicationPorts().WeatherGateway
	assert.Equal(t, "logged(stub [Rate Limited])", gateway.GetGatewayName())
	require.NotNil(t, deps.BreakerState())
	assert.Equal(t, "closed", deps.BreakerState().State())
}

func TestDependencyContainer_MinimalChain(t *testing.T) {
	cfg := testAppConfig(t)
	cfg.Weather.EnableCircuitBreaker = false
	cfg.Weather.EnableLogging = false
	cfg.Weather.RateLimitRPS = 0

	deps, err := NewDependencyContainer(cfg, DependencyOptions{
		Gateway:  newStubGateway(t),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	assert.Equal(t, "stub", deps.ApplicationPorts().WeatherGateway.GetGatewayName())
	assert.Nil(t, deps.BreakerState())
	assert.NoError(t, deps.Cleanup())
}

func TestDependencyContainer_RequiresConfig(t *testing.T) {
	_, err := NewDependencyContainer(nil, DependencyOptions{})
	assert.Error(t, err)
}

func TestApplication_MountAndServeState(t *testing.T) {
	application := newTestApplication(t, testAppConfig(t), yerevanGateway(t))
	router := application.GetRouter()

	application.GetSession().Mount()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, application.GetSession().Wait(ctx))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/state", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var state struct {
		Query struct {
			City string `json:"city"`
			Unit string `json:"unit"`
		} `json:"query"`
		IsLoading      bool `json:"isLoading"`
		CurrentWeather struct {
			Status string `json:"status"`
		} `json:"currentWeather"`
		SampledForecast []struct {
			Timestamp string `json:"timestamp"`
		} `json:"sampledForecast"`
		Panel struct {
			Kind string `json:"kind"`
		} `json:"panel"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))

	assert.Equal(t, "Yerevan", state.Query.City)
	assert.Equal(t, "metric", state.Query.Unit)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "success", state.CurrentWeather.Status)
	require.Len(t, state.SampledForecast, 2)
	assert.Equal(t, "2024-06-03 09:00:00", state.SampledForecast[0].Timestamp)
	assert.Equal(t, "2024-06-04 09:00:00", state.SampledForecast[1].Timestamp)
	assert.Equal(t, "content", state.Panel.Kind)
}

func TestApplication_SubmitUnknownCity(t *testing.T) {
	application := newTestApplication(t, testAppConfig(t), yerevanGateway(t))
	router := application.GetRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/city", strings.NewReader(`{"city":"Atlantis"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, application.GetSession().Wait(ctx))

	snapshot := application.GetSession().Snapshot()
	message, failed := snapshot.CurrentWeather.Failure()
	assert.True(t, failed)
	assert.Equal(t, "city not found", message)
}

func TestApplication_PrometheusEndpoint(t *testing.T) {
	application := newTestApplication(t, testAppConfig(t), yerevanGateway(t))

	application.GetSession().Mount()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, application.GetSession().Wait(ctx))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weather_fetch_cycles_started_total{trigger="mount"} 1`)
	assert.Contains(t, w.Body.String(), `weather_gateway_requests_total{operation="current_weather",outcome="success"} 1`)
}

func TestApplication_Shutdown(t *testing.T) {
	application := newTestApplication(t, testAppConfig(t), yerevanGateway(t))
	application.GetSession().Mount()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, application.Shutdown(ctx))
	assert.NoError(t, application.Shutdown(ctx), "repeated shutdown returns the first result")
	assert.False(t, application.GetSession().IsLoading())
}

func testServerConfig(t *testing.T) *config.Config {
	cfg := testAppConfig(t)
	cfg.Server.Port = 0
	return cfg
}

func TestApplication_StartReturnsAfterTeardownOnCancel(t *testing.T) {
	gateway := newStubGateway(t)
	inFlight := blockUntilCancelled(gateway)
	application := newTestApplication(t, testServerConfig(t), gateway)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addr, startErr := startApplication(t, ctx, application)

	waitInFlight(t, inFlight)

	// leaves an idle keep-alive connection behind for the server to close
	client := &http.Client{Timeout: 2 * time.Second}
	defer client.CloseIdleConnections()
	resp, err := client.Get("http://" + addr + "/api/state")
	require.NoError(t, err)
	var state struct {
		IsLoading bool `json:"isLoading"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	resp.Body.Close()
	assert.True(t, state.IsLoading)

	cancel()
	require.NoError(t, waitStart(t, startErr))

	// Start must not return while the aborted cycle is still settling
	assert.False(t, application.GetSession().IsLoading())
	message, failed := application.GetSession().CurrentWeather().Failure()
	require.True(t, failed)
	assert.Equal(t, context.Canceled.Error(), message)
}

func TestApplication_StartWaitsForConcurrentShutdown(t *testing.T) {
	gateway := newStubGateway(t)
	inFlight := blockUntilCancelled(gateway)
	application := newTestApplication(t, testServerConfig(t), gateway)

	_, startErr := startApplication(t, context.Background(), application)
	waitInFlight(t, inFlight)

	shutdownErr := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		shutdownErr <- application.Shutdown(ctx)
	}()

	require.NoError(t, waitStart(t, startErr))
	assert.False(t, application.GetSession().IsLoading())
	_, failed := application.GetSession().CurrentWeather().Failure()
	assert.True(t, failed)

	require.NoError(t, <-shutdownErr)
}

func TestApplication_ShutdownReleasesResourcesWhenServerShutdownFails(t *testing.T) {
	cfg := testServerConfig(t)
	gateway := newStubGateway(t)
	inFlight := blockUntilCancelled(gateway)
	application := newTestApplication(t, cfg, gateway)

	addr, startErr := startApplication(t, context.Background(), application)
	waitInFlight(t, inFlight)

	// a connection that never sends a request keeps the server from going quiet
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	// the accept loop is sequential, so a served request proves the silent connection is tracked
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	client.CloseIdleConnections()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	err = application.Shutdown(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorContains(t, err, "shutdown HTTP server")

	// the session was closed despite the HTTP failure
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, application.GetSession().Wait(waitCtx))
	message, failed := application.GetSession().CurrentWeather().Failure()
	require.True(t, failed)
	assert.Equal(t, context.Canceled.Error(), message)

	// the file logger was closed as well
	application.ports.Logger.Error("written after shutdown")
	content, readErr := os.ReadFile(cfg.Weather.LogFilePath)
	require.NoError(t, readErr)
	assert.NotContains(t, string(content), "written after shutdown")

	assert.ErrorIs(t, waitStart(t, startErr), context.DeadlineExceeded)
}
