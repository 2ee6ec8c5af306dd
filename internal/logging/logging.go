// Package logging installs the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "PERCEPTRON_LOG_LEVEL"

var logLevel = new(slog.LevelVar)

// Configure installs a TextHandler on w as the default logger at Info, or
// at PERCEPTRON_LOG_LEVEL when set.
func Configure(w io.Writer) *slog.Logger {
	logLevel.Set(slog.LevelInfo)
	if env := os.Getenv(EnvLevel); env != "" {
		logLevel.Set(ParseLevel(env))
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// SetLevel changes the level of the logger installed by Configure.
// PERCEPTRON_LOG_LEVEL, when set, wins over level.
func SetLevel(level string) {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	logLevel.Set(ParseLevel(level))
}

// ParseLevel maps DEBUG, WARN and ERROR to their slog levels; anything
// else is Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
