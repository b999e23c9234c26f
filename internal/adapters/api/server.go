// Package api provides HTTP adapters for the hexagonal architecture
// These adapters translate HTTP requests into operations on the lookup session
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghumash/WeatherApp/internal/core/weather"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	session          WeatherSession
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	metricsHandler   http.Handler
}

// WeatherSession is the part of the lookup session the HTTP adapter drives
type WeatherSession interface {
	SubmitCity(name string) (*weather.Cycle, error)
	ToggleUnit() *weather.Cycle
	Snapshot() weather.Snapshot
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	Session          WeatherSession
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker

	// MetricsHandler serves /metrics. Defaults to the global Prometheus registry.
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		session:          opts.Session,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		metricsHandler:   metricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Session == nil {
		return errors.NewValidationError("weather session is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.POST("/city", s.submitCity)
		api.POST("/unit/toggle", s.toggleUnit)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	statusCode := http.StatusOK
	overall := "healthy"
	for _, status := range results {
		if status.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
			overall = "unhealthy"
			break
		}
	}

	c.JSON(statusCode, gin.H{
		"status":     overall,
		"components": results,
	})
}
