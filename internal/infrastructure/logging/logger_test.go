package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/infrastructure/config"
	"github.com/10igma/spacetrader-web/internal/infrastructure/logging"
)

func TestSlogLogger_JSON(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "info", Format: "json"})

	// Act
	logger.Log("INFO", "Arrived", map[string]interface{}{"game_id": "game-1", "day": 3})

	// Assert
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Arrived", entry["msg"])
	assert.Equal(t, "game-1", entry["game_id"])
	assert.Equal(t, float64(3), entry["day"])
}

func TestSlogLogger_FiltersBelowLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, config.LoggingConfig{Level: "warn", Format: "text"})

	// Act
	logger.Log("DEBUG", "noise", nil)
	logger.Log("INFO", "noise", nil)
	logger.Log("WARNING", "Command rejected", map[string]interface{}{"error": "no encounter"})

	// Assert
	assert.NotContains(t, buf.String(), "noise")
	assert.Contains(t, buf.String(), "Command rejected")
	assert.Contains(t, buf.String(), `error="no encounter"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(name), name)
	}
}
