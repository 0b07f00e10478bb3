package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(dir, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("phase started", "phase", "Setup")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "swarmline.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase started")
	assert.Contains(t, string(data), "Setup")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	dir := t.TempDir()

	logger, closeFn, err := New(dir, slog.LevelWarn)
	require.NoError(t, err)

	logger.Debug("noise")
	logger.Warn("important")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, "logs", "swarmline.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "noise")
	assert.Contains(t, string(data), "important")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Info("dropped")
	})
}
