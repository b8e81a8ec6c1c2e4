package comm

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHandler_EmitsDebugInJSONModeWithoutVerbose(t *testing.T) {
	output := captureJSONLogs(t, func() {
		logger := NewLogger(slog.LevelDebug)
		logger.Debug("sent function",
			slog.String("type", "getMe"),
			slog.Any("args", []any{1, "foo"}),
			slog.Duration("duration", 2500*time.Millisecond),
		)
	})

	require.Len(t, output, 1)
	logObj := output[0]

	assert.Equal(t, "log", logObj["type"])
	assert.Equal(t, "getMe", logObj["attr.type"])
	assert.Equal(t, "debug", logObj["level"])
	assert.Equal(t, "sent function", logObj["message"])
	assert.Equal(t, "2.5s", logObj["duration"])
	assert.Contains(t, logObj, "time")

	args, ok := logObj["args"].([]any)
	require.True(t, ok)
	assert.Len(t, args, 2)
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	output := captureJSONLogs(t, func() {
		logger := NewLogger(slog.LevelDebug).
			WithGroup("conn").
			With("component", "tdjson")
		logger.Info("update", slog.String("tag", "updateNewMessage"))
	})

	require.Len(t, output, 1)
	assert.Equal(t, "tdjson", output[0]["conn.component"])
	assert.Equal(t, "updateNewMessage", output[0]["conn.tag"])
}

func TestSlogHandler_KeepsReservedKeys(t *testing.T) {
	output := captureJSONLogs(t, func() {
		NewLogger(slog.LevelDebug).Warn("engine said",
			slog.String("type", "result"),
			slog.String("level", "fatal"),
			slog.String("message", "overridden"),
			slog.Int("time", 0),
		)
	})

	require.Len(t, output, 1)
	logObj := output[0]
	assert.Equal(t, "log", logObj["type"])
	assert.Equal(t, "warning", logObj["level"])
	assert.Equal(t, "engine said", logObj["message"])
	assert.NotEqual(t, float64(0), logObj["time"])

	assert.Equal(t, "result", logObj["attr.type"])
	assert.Equal(t, "fatal", logObj["attr.level"])
	assert.Equal(t, "overridden", logObj["attr.message"])
	assert.Equal(t, float64(0), logObj["attr.time"])
}

func TestSlogHandler_RespectsLevel(t *testing.T) {
	output := captureJSONLogs(t, func() {
		logger := NewLogger(slog.LevelWarn)
		logger.Info("dropped")
		logger.Warn("kept")
	})

	require.Len(t, output, 1)
	assert.Equal(t, "kept", output[0]["message"])
	assert.Equal(t, "warning", output[0]["level"])
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelError, LevelFromVerbosity(0))
	assert.Equal(t, slog.LevelError, LevelFromVerbosity(1))
	assert.Equal(t, slog.LevelWarn, LevelFromVerbosity(2))
	assert.Equal(t, slog.LevelInfo, LevelFromVerbosity(3))
	assert.Equal(t, slog.LevelDebug, LevelFromVerbosity(5))
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "a=1 b=two", formatFields(JsonMessage{"b": "two", "a": 1}))
}

func captureJSONLogs(t *testing.T, fn func()) []map[string]any {
	t.Helper()

	oldSettings := *settings
	defer func() {
		*settings = oldSettings
	}()
	Configure(false, false, false, true, false)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	require.NoError(t, w.Close())
	outBytes, err := io.ReadAll(r)
	require.NoError(t, err)

	var output []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(outBytes), []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var obj map[string]any
		require.NoError(t, json.Unmarshal(line, &obj), "line %q", string(line))
		output = append(output, obj)
	}

	return output
}
