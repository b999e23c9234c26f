package infrastructure

import (
	"context"

	"github.com/ghumash/WeatherApp/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	gatewayChecker ports.HealthChecker
	sessionChecker ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	GatewayChecker ports.HealthChecker
	SessionChecker ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		gatewayChecker: config.GatewayChecker,
		sessionChecker: config.SessionChecker,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.gatewayChecker != nil {
		results["weatherGateway"] = s.gatewayChecker.Check(ctx)
	}

	if s.sessionChecker != nil {
		results["session"] = s.sessionChecker.Check(ctx)
	}

	if s.configProvider != nil {
		appConfig := s.configProvider.GetAppConfig()
		weatherConfig := s.configProvider.GetWeatherConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"appBaseURL":      appConfig.BaseURL,
				"providerBaseURL": weatherConfig.BaseURL,
				"rateLimitRPS":    weatherConfig.RateLimitRPS,
				"circuitBreaker":  weatherConfig.BreakerEnabled,
			},
		}
	}

	return results
}

// IsHealthy reports whether no component is unhealthy. Degraded counts as healthy.
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == "unhealthy" {
			return false
		}
	}
	return true
}
