package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ghumash/WeatherApp/internal/adapters/external"
	"github.com/ghumash/WeatherApp/internal/adapters/infrastructure"
	"github.com/ghumash/WeatherApp/internal/config"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/logger"
)

type DependencyContainer struct {
	config     *config.Config
	registry   *prometheus.Registry
	fileLogger *infrastructure.FileLoggerAdapter
	breaker    *external.CircuitBreakerGateway
	metrics    *infrastructure.PrometheusMetricsCollector
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides parts of the container, mostly for tests
type DependencyOptions struct {
	// Gateway replaces the OpenWeatherMap client at the bottom of the decorator chain
	Gateway ports.WeatherGateway
	// Registry defaults to a fresh registry with the Go and process collectors
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config:   cfg,
		registry: opts.Registry,
	}

	if err := container.initializePorts(opts.Gateway); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(baseGateway ports.WeatherGateway) error {
	slog.Info("Initializing ports...")

	log := c.initializeLogger()
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	weatherConfig := configProvider.GetWeatherConfig()

	c.metrics = infrastructure.NewPrometheusMetricsCollector(c.registry)
	c.registry = c.metrics.Registry()

	if baseGateway == nil {
		baseGateway = external.NewOpenWeatherMapGateway(external.OpenWeatherMapGatewayParams{
			APIKey:  weatherConfig.APIKey,
			BaseURL: weatherConfig.BaseURL,
			Timeout: weatherConfig.RequestTimeout,
			Logger:  log,
		})
	}

	gateway := c.decorateGateway(baseGateway, weatherConfig, log)

	c.ports = &ports.ApplicationPorts{
		WeatherGateway: gateway,
		ConfigProvider: configProvider,
		Logger:         log,
		Metrics:        c.metrics,
	}

	slog.Info("Ports initialized successfully", "gateway", gateway.GetGatewayName())
	return nil
}

// initializeLogger logs through slog, and also to a JSON file when gateway logging is enabled
func (c *DependencyContainer) initializeLogger() ports.Logger {
	level := logger.ParseLevel(c.config.Log.Level)
	base := logger.NewWithLevel(level)
	slog.SetDefault(base.Logger)

	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(base)

	weatherConfig := c.config.Weather
	if !weatherConfig.EnableLogging || weatherConfig.LogFilePath == "" {
		return log
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherConfig.LogFilePath, level)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return log
	}

	c.fileLogger = fileLogger
	slog.Info("File logging enabled", "path", fileLogger.Path())
	return infrastructure.NewTeeLogger(log, fileLogger)
}

// decorateGateway wraps the provider client, innermost first: metrics, circuit
// breaker, rate limiter, logging
func (c *DependencyContainer) decorateGateway(gateway ports.WeatherGateway, cfg ports.WeatherConfig, log ports.Logger) ports.WeatherGateway {
	gateway = external.NewInstrumentedGateway(gateway, c.metrics)

	if cfg.BreakerEnabled {
		c.breaker = external.NewCircuitBreakerGateway(gateway, external.DefaultCircuitBreakerSettings(), log)
		gateway = c.breaker
		slog.Info("Weather gateway circuit breaker enabled")
	}

	if cfg.RateLimitRPS > 0 {
		gateway = external.NewRateLimitedGateway(gateway, cfg.RateLimitRPS, cfg.RateLimitBurst)
		slog.Info("Weather gateway rate limiting enabled", "rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	}

	if cfg.EnableLogging {
		gateway = external.NewGatewayLoggingDecorator(gateway, log)
		slog.Info("Weather gateway logging enabled")
	}

	return gateway
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// BreakerState returns nil when the circuit breaker is disabled
func (c *DependencyContainer) BreakerState() infrastructure.BreakerState {
	if c.breaker == nil {
		return nil
	}
	return c.breaker
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
