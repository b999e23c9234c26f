package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ghumash/WeatherApp/internal/ports"
)

// FileLoggerAdapter appends structured JSON log lines to a file
type FileLoggerAdapter struct {
	filePath string
	minLevel slog.Level
	file     *os.File
	mutex    sync.Mutex
}

// NewFileLoggerAdapter creates the log directory if needed and opens the file for appending.
// Entries below level are dropped.
func NewFileLoggerAdapter(logPath string, level slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		minLevel: level,
		file:     file,
	}, nil
}

func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelDebug, msg, fields...)
}

func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelInfo, msg, fields...)
}

func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelWarn, msg, fields...)
}

func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry(slog.LevelError, msg, fields...)
}

// Path returns the file the adapter writes to
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

// Close flushes and closes the log file. Entries logged afterwards are dropped.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level slog.Level, msg string, fields ...ports.Field) {
	if level < f.minLevel {
		return
	}

	logEntry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339Nano),
		"level":     level.String(),
		"message":   msg,
	}

	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			logEntry[field.Key] = err.Error()
			continue
		}
		logEntry[field.Key] = field.Value
	}

	jsonData, err := json.Marshal(logEntry)
	if err != nil {
		jsonData, _ = json.Marshal(map[string]interface{}{
			"timestamp": logEntry["timestamp"],
			"level":     "ERROR",
			"message":   fmt.Sprintf("failed to marshal log entry: %v", err),
		})
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(jsonData, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
