package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"word-mcp-launcher/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("Production", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, l)
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
	})

	t.Run("DebugConsole", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Warn", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "warn"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
		assert.True(t, l.Core().Enabled(zap.WarnLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "loud"})
		assert.Error(t, err)
		assert.Nil(t, l)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "launcher.log")
		l, err := logger.New(&logger.Config{Level: "info", File: path, MaxSizeMB: 1})
		require.NoError(t, err)

		l.Info("hello file", zap.String("port", "3000"))
		_ = l.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello file"`)
		assert.Contains(t, string(data), `"port":"3000"`)
	})
}

func TestWithLaunch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	logger.WithLaunch(base, "abc").Info("tagged")
	logger.WithLaunch(base, "").Info("untagged")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["launch_id"])
	assert.NotContains(t, entries[1].ContextMap(), "launch_id")
}
