// Package logging configures the launcher's logger. Logging is off by
// default: the launcher must add nothing to the child's terminal output
// unless the user explicitly opts in.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// levelEnv opts into launcher logging ("debug", "info", ...).
	levelEnv = "POKEMON_TERMINAL_LOG"
	// fileEnv adds a rotated log file next to the console output.
	fileEnv = "POKEMON_TERMINAL_LOG_FILE"
)

// New builds the launcher logger from the environment. Without
// POKEMON_TERMINAL_LOG it returns a no-op logger.
func New() zerolog.Logger {
	level, enabled := parseLevel(os.Getenv(levelEnv))
	if !enabled {
		return zerolog.Nop()
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	writers := []io.Writer{console}
	if path := os.Getenv(fileEnv); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   path,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// parseLevel converts the env value to a zerolog level. Any non-empty
// unrecognized value (e.g. "1") enables debug.
func parseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(level) {
	case "":
		return zerolog.Disabled, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	default:
		return zerolog.DebugLevel, true
	}
}

// NewTestLogger creates a logger for testing that writes to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
