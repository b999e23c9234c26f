package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ghumash/WeatherApp/internal/adapters/api"
	"github.com/ghumash/WeatherApp/internal/adapters/infrastructure"
	"github.com/ghumash/WeatherApp/internal/config"
	"github.com/ghumash/WeatherApp/internal/core/weather"
	"github.com/ghumash/WeatherApp/internal/ports"
)

type Application struct {
	config *config.Config

	session *weather.Session

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts

	addrMu     sync.RWMutex
	listenAddr net.Addr

	shutdownOnce sync.Once
	shutdownErr  error
}

// ShutdownTimeout bounds the teardown Start runs after its context is cancelled
const ShutdownTimeout = 30 * time.Second

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeSession(); err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeSession() error {
	slog.Info("Initializing weather session...")

	session, err := weather.NewSession(weather.SessionDependencies{
		Gateway: a.ports.WeatherGateway,
		Config:  a.ports.ConfigProvider,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather session: %w", err)
	}
	a.session = session

	slog.Info("Weather session initialized successfully",
		"city", session.Query().CityName,
		"unit", session.Query().Unit.String())
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cityname", api.ValidateCityName); err != nil {
			slog.Warn("Failed to register cityname validator", "error", err)
		}
	}

	metricsCollector := a.deps.MetricsCollector()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		GatewayChecker: infrastructure.NewWeatherGatewayHealthChecker(a.ports.WeatherGateway, a.deps.BreakerState()),
		SessionChecker: infrastructure.NewSessionHealthChecker(a.session),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Session:          a.session,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		MetricsHandler:   metricsCollector.Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the initial fetch cycle for the default city and serves HTTP until
// ctx is cancelled or Shutdown is called. It returns only after the teardown
// has finished, so callers may exit as soon as it returns.
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	listener, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return errors.Join(fmt.Errorf("listen on %s: %w", a.httpServer.Addr, err), a.shutdownWithTimeout())
	}

	cycle := a.session.Mount()
	slog.Info("Initial fetch cycle started", "cycle_id", cycle.ID, "city", cycle.Query.CityName)

	a.addrMu.Lock()
	a.listenAddr = listener.Addr()
	a.addrMu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", listener.Addr().String())
		serveErr <- a.httpServer.Serve(listener)
	}()

	var runErr error
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("HTTP server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	// Waits for a concurrent Shutdown call to finish when one is already running
	return errors.Join(runErr, a.shutdownWithTimeout())
}

func (a *Application) shutdownWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return a.Shutdown(ctx)
}

// Shutdown stops the HTTP server, aborts in-flight fetch cycles and releases
// resources. Every step runs even when an earlier one fails. Concurrent and
// repeated calls wait for the first teardown and return its result.
func (a *Application) Shutdown(ctx context.Context) error {
	a.shutdownOnce.Do(func() {
		a.shutdownErr = a.teardown(ctx)
	})
	return a.shutdownErr
}

func (a *Application) teardown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var errs []error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		errs = append(errs, fmt.Errorf("shutdown HTTP server: %w", err))
	}

	a.session.Close()
	if err := a.session.Wait(ctx); err != nil {
		slog.Warn("Fetch cycles did not settle before shutdown", "error", err)
		errs = append(errs, err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
		errs = append(errs, fmt.Errorf("release resources: %w", err))
	}

	slog.Info("Application shutdown complete")
	return errors.Join(errs...)
}

// Addr returns the address the HTTP server listens on. It is nil until Start has
// bound the listener and started the initial fetch cycle.
func (a *Application) Addr() net.Addr {
	a.addrMu.RLock()
	defer a.addrMu.RUnlock()
	return a.listenAddr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetSession returns the weather session for testing
func (a *Application) GetSession() *weather.Session {
	return a.session
}
