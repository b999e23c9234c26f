package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/ghumash/WeatherApp/pkg/errors"
	"github.com/ghumash/WeatherApp/pkg/validation"
)

const (
	maxPortNumber            = 65535
	maxRequestTimeoutSeconds = 300
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig  `split_words:"true"`
	Weather    WeatherConfig `split_words:"true"`
	Session    SessionConfig `split_words:"true"`
	Log        LogConfig     `split_words:"true"`
	AppBaseURL string        `envconfig:"APP_URL" default:"http://localhost:8080"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey                string  `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL               string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org"`
	RequestTimeoutSeconds int     `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS          float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst        int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"10"`
	EnableCircuitBreaker  bool    `envconfig:"WEATHER_ENABLE_CIRCUIT_BREAKER" default:"true"`
	EnableLogging         bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string  `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_gateway.log"`
}

// RequestTimeout returns the HTTP client timeout, zero meaning none
func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

type SessionConfig struct {
	DefaultCity           string `envconfig:"SESSION_DEFAULT_CITY" default:"Yerevan"`
	DefaultUnit           string `envconfig:"SESSION_DEFAULT_UNIT" default:"metric"`
	DiscardStaleResponses bool   `envconfig:"SESSION_DISCARD_STALE_RESPONSES" default:"false"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.validateAppBaseURL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAppBaseURL() error {
	if c.AppBaseURL == "" {
		return errors.NewConfigurationError("APP_URL cannot be empty", nil)
	}
	if !hasHTTPScheme(c.AppBaseURL) {
		return errors.NewConfigurationError("APP_URL must start with http:// or https://", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.APIKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY is required", nil)
	}
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !hasHTTPScheme(w.BaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.RequestTimeoutSeconds < 0 || w.RequestTimeoutSeconds > maxRequestTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 0 and 300", nil)
	}
	if w.RateLimitRPS < 0 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS cannot be negative", nil)
	}
	if w.RateLimitRPS > 0 && w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if !validation.IsValidCityName(s.DefaultCity) {
		return errors.NewConfigurationError("SESSION_DEFAULT_CITY must be a non-empty city name", nil)
	}
	if !validation.IsValidUnit(strings.ToLower(strings.TrimSpace(s.DefaultUnit))) {
		return errors.NewConfigurationError("SESSION_DEFAULT_UNIT must be one of: metric, imperial", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func hasHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
