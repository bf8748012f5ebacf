package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	}
	for input, expected := range cases {
		level, err := convertStringToLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	level, err := convertStringToLogLevel("VERBOSE")
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger, err := NewLogger(&buffer, "WARN")
	require.NoError(t, err)

	logger.Info("no se ve")
	logger.Warn("se ve", "pid", 3)

	assert.NotContains(t, buffer.String(), "no se ve")
	assert.Contains(t, buffer.String(), "se ve")
	assert.Contains(t, buffer.String(), "pid=3")
}
