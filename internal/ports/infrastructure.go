package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather gateway configuration
type WeatherConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	BreakerEnabled bool
	EnableLogging  bool
	LogFilePath    string
}

// SessionConfig represents the lookup session configuration
type SessionConfig struct {
	DefaultCity           string
	DefaultUnit           string
	DiscardStaleResponses bool
}

// AppConfig represents application configuration
type AppConfig struct {
	BaseURL string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetSessionConfig() SessionConfig
	GetAppConfig() AppConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordGatewayCall(ctx context.Context, operation string, success bool, duration time.Duration)
	RecordCycleStarted(ctx context.Context, trigger string)
	RecordCycleSettled(ctx context.Context, outcome string)
	RecordStaleResponse(ctx context.Context, slot string)
}
