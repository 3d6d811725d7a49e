// Package logging builds the slog logger used across quotegen.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is below debug; it is shown as debug by the charm handler.
const LevelTrace = slog.Level(-8)

const (
	DefaultLogFileMaxSizeMB  = 5
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// Config holds logging configuration.
type Config struct {
	Level string // debug, info, warn, error
	File  string // when set, records go to a rotating file instead of the writer
}

// New creates a logger writing human-readable records to stderr, or to
// cfg.File when it is set. The returned closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer) {
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    DefaultLogFileMaxSizeMB,
			MaxBackups: DefaultLogFileMaxBackups,
			MaxAge:     DefaultLogFileMaxAgeDays,
			Compress:   true,
		}
		return NewWithWriter(cfg, rotator), rotator
	}
	return NewWithWriter(cfg, os.Stderr), nopCloser{}
}

// NewWithWriter creates a logger backed by a charmbracelet/log handler.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           slogToCharmLevel(parseLevel(cfg.Level)),
		ReportTimestamp: true,
		Prefix:          "quotegen",
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
