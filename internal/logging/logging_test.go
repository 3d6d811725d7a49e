package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "warn"}, &buf)

	logger.Info("hidden message")
	logger.Warn("visible message", "key", "value")

	output := buf.String()
	assert.NotContains(t, output, "hidden message")
	assert.Contains(t, output, "visible message")
	assert.Contains(t, output, "key=value")
}

func TestNewWithWriter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "debug"}, &buf)

	logger.Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quotegen.log")

	logger, closer := New(Config{Level: "info", File: path})
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_Stderr(t *testing.T) {
	logger, closer := New(Config{})
	assert.NotNil(t, logger)
	assert.NoError(t, closer.Close())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    slog.Level
		expected log.Level
	}{
		{"trace maps to debug", LevelTrace, log.DebugLevel},
		{"debug level", slog.LevelDebug, log.DebugLevel},
		{"info level", slog.LevelInfo, log.InfoLevel},
		{"warn level", slog.LevelWarn, log.WarnLevel},
		{"error level", slog.LevelError, log.ErrorLevel},
		{"very high level maps to error", slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slogToCharmLevel(tt.input))
		})
	}
}
