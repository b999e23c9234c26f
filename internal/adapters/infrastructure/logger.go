package infrastructure

import (
	"log/slog"

	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/logger"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter creates a Logger port backed by l. A nil l uses slog's default logger.
func NewSlogLoggerAdapter(l *logger.Logger) *SlogLoggerAdapter {
	if l == nil {
		return &SlogLoggerAdapter{logger: slog.Default()}
	}
	return &SlogLoggerAdapter{logger: l.Logger}
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.logger.Debug(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.logger.Info(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.logger.Warn(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.logger.Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// TeeLogger sends every entry to all of its loggers
type TeeLogger struct {
	loggers []ports.Logger
}

func NewTeeLogger(loggers ...ports.Logger) *TeeLogger {
	return &TeeLogger{loggers: loggers}
}

func (t *TeeLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Debug(msg, fields...)
	}
}

func (t *TeeLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Info(msg, fields...)
	}
}

func (t *TeeLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Warn(msg, fields...)
	}
}

func (t *TeeLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range t.loggers {
		l.Error(msg, fields...)
	}
}
