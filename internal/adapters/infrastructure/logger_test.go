package infrastructure

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghumash/WeatherApp/internal/mocks"
	"github.com/ghumash/WeatherApp/internal/ports"
	"github.com/ghumash/WeatherApp/pkg/logger"
)

func TestSlogLoggerAdapter_WritesFieldsAtLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogLoggerAdapter(logger.NewWithWriter(&buf, slog.LevelInfo))

	adapter.Debug("hidden")
	adapter.Info("Fetch cycle started", ports.F("trigger", "mount"), ports.F("generation", uint64(1)))
	adapter.Error("Forecast request failed", ports.F("error", "timeout"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "Fetch cycle started", first["msg"])
	assert.Equal(t, "mount", first["trigger"])
	assert.Equal(t, float64(1), first["generation"])
	assert.Equal(t, "ERROR", second["level"])
	assert.Equal(t, "timeout", second["error"])
}

func TestSlogLoggerAdapter_NilUsesDefault(t *testing.T) {
	adapter := NewSlogLoggerAdapter(nil)
	assert.NotPanics(t, func() { adapter.Warn("uses the default logger") })
}

func TestTeeLogger_FansOut(t *testing.T) {
	a, b := mocks.NewLogger(t), mocks.NewLogger(t)
	for _, sink := range []*mocks.Logger{a, b} {
		sink.EXPECT().Debug("one", mock.Anything).Once()
		sink.EXPECT().Info("two", []ports.Field{ports.F("city", "Paris")}).Once()
		sink.EXPECT().Warn("three", mock.Anything).Once()
		sink.EXPECT().Error("four", mock.Anything).Once()
	}
	tee := NewTeeLogger(a, b)

	tee.Debug("one")
	tee.Info("two", ports.F("city", "Paris"))
	tee.Warn("three")
	tee.Error("four")
}
