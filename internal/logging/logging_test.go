package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestConfigure(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv(EnvLevel, "")

	buf := &bytes.Buffer{}
	logger := Configure(buf)
	slog.Debug("hidden")
	logger.Info("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=1")

	SetLevel("WARN")
	slog.Info("quiet")
	assert.NotContains(t, buf.String(), "quiet")

	SetLevel("debug")
	slog.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestEnvLevelWins(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv(EnvLevel, "ERROR")

	buf := &bytes.Buffer{}
	Configure(buf)
	slog.Warn("suppressed")
	SetLevel("DEBUG")
	slog.Warn("still suppressed")
	slog.Error("kept")
	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "kept")
}
