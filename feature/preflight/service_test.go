package preflight

import (
	"context"
	"errors"
	"os"
	"testing"

	"word-mcp-launcher/core/config"
	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/core/server"
	"word-mcp-launcher/core/storage"
	"word-mcp-launcher/core/storage/mocks"
	"word-mcp-launcher/feature/preflight/checks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testConfig(port, binary string) *config.Config {
	return &config.Config{
		Server: server.Config{Port: port},
		Launch: launcher.Config{Binary: binary, Mode: launcher.ModeSupervise},
	}
}

func TestService_Run(t *testing.T) {
	logger := zap.NewNop()

	t.Run("AllPass", func(t *testing.T) {
		svc := NewService(testConfig("3000", os.Args[0]), nil, logger)

		report := svc.Run(context.Background())
		assert.True(t, report.Passed)
		assert.NoError(t, report.Err())
		assert.Equal(t, "skipped", report.Storage.Status)
	})

	t.Run("InvalidPortReportedFirst", func(t *testing.T) {
		svc := NewService(testConfig("abc", "word-mcp-server-that-does-not-exist"), nil, logger)

		report := svc.Run(context.Background())
		assert.False(t, report.Passed)
		assert.Equal(t, "error", report.Port.Status)
		assert.Equal(t, "error", report.Binary.Status)
		assert.Equal(t, launcher.ExitConfig, launcher.ExitCode(report.Err()))
	})

	t.Run("MissingBinary", func(t *testing.T) {
		svc := NewService(testConfig("3000", "word-mcp-server-that-does-not-exist"), nil, logger)

		report := svc.Run(context.Background())
		assert.False(t, report.Passed)
		assert.ErrorIs(t, report.Err(), launcher.ErrBinaryNotFound)
		assert.Equal(t, launcher.ExitNotFound, launcher.ExitCode(report.Err()))
	})

	t.Run("StorageEnabled", func(t *testing.T) {
		cfg := testConfig("3000", os.Args[0])
		cfg.Storage = storage.Config{Enabled: true, Bucket: "documents", TimeoutSeconds: 1}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "documents").Return(true, nil)

		report := NewService(cfg, client, logger).Run(context.Background())
		assert.True(t, report.Passed)
		assert.Equal(t, "ok", report.Storage.Status)
		client.AssertExpectations(t)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		cfg := testConfig("3000", os.Args[0])
		cfg.Storage = storage.Config{Enabled: true, Bucket: "documents"}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "documents").Return(false, errors.New("access denied"))

		report := NewService(cfg, client, logger).Run(context.Background())
		assert.False(t, report.Passed)
		assert.ErrorIs(t, report.Err(), checks.ErrStorageUnavailable)
		assert.Equal(t, launcher.ExitConfig, launcher.ExitCode(report.Err()))
	})
}
