package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
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
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestInitAt_WritesToFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := InitAt(dir, "warn")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Same(t, logger, Logger)

	logger.Info("hidden message")
	logger.Warn("visible message", "key", "value")

	data, err := os.ReadFile(filepath.Join(dir, "tablero.log"))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.Contains(content, "visible message"))
	assert.True(t, strings.Contains(content, "key=value"))
	assert.False(t, strings.Contains(content, "hidden message"), "info should be filtered at warn level")
}

func TestInitAt_BadLevel(t *testing.T) {
	_, err := InitAt(t.TempDir(), "loud")
	assert.Error(t, err)
}
