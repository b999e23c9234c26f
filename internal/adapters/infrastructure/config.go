package infrastructure

import (
	"github.com/ghumash/WeatherApp/internal/config"
	"github.com/ghumash/WeatherApp/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetAppConfig() ports.AppConfig {
	return ports.AppConfig{
		BaseURL: c.config.AppBaseURL,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		APIKey:         c.config.Weather.APIKey,
		BaseURL:        c.config.Weather.BaseURL,
		RequestTimeout: c.config.Weather.RequestTimeout(),
		RateLimitRPS:   c.config.Weather.RateLimitRPS,
		RateLimitBurst: c.config.Weather.RateLimitBurst,
		BreakerEnabled: c.config.Weather.EnableCircuitBreaker,
		EnableLogging:  c.config.Weather.EnableLogging,
		LogFilePath:    c.config.Weather.LogFilePath,
	}
}

func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		DefaultCity:           c.config.Session.DefaultCity,
		DefaultUnit:           c.config.Session.DefaultUnit,
		DiscardStaleResponses: c.config.Session.DiscardStaleResponses,
	}
}
