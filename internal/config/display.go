package config

import (
	"log/slog"
	"strings"
)

// LogValue implements slog.LogValuer so the effective configuration can be
// logged at startup with secrets masked.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("server",
			slog.Int("port", c.Server.Port),
		),
		slog.Group("weather",
			slog.String("api_key", MaskSecret(c.Weather.APIKey)),
			slog.String("base_url", c.Weather.BaseURL),
			slog.Int("request_timeout_seconds", c.Weather.RequestTimeoutSeconds),
			slog.Float64("rate_limit_rps", c.Weather.RateLimitRPS),
			slog.Int("rate_limit_burst", c.Weather.RateLimitBurst),
			slog.Bool("circuit_breaker", c.Weather.EnableCircuitBreaker),
			slog.Bool("logging", c.Weather.EnableLogging),
			slog.String("log_file_path", c.Weather.LogFilePath),
		),
		slog.Group("session",
			slog.String("default_city", c.Session.DefaultCity),
			slog.String("default_unit", c.Session.DefaultUnit),
			slog.Bool("discard_stale_responses", c.Session.DiscardStaleResponses),
		),
		slog.String("log_level", c.Log.Level),
		slog.String("app_base_url", c.AppBaseURL),
	)
}

// MaskSecret keeps the first quarter of s visible
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}
