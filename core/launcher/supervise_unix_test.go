//go:build unix

package launcher_test

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"word-mcp-launcher/core/launcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// superviseAsync starts Supervise with the child's stdout on a pipe and
// waits until the fake server reports it is ready.
func superviseAsync(t *testing.T, ctx context.Context, mode string, signals <-chan os.Signal) <-chan error {
	t.Helper()
	t.Setenv(fakeServerEnv, mode)

	l := newLauncher(t, "3000")
	cmd, err := l.Command()
	require.NoError(t, err)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	l.Stdout = w

	done := make(chan error, 1)
	go func() { done <- l.Supervise(ctx, cmd, signals) }()

	waitForLine(t, r, "ready")
	return done
}

func awaitExit(t *testing.T, done <-chan error, within time.Duration) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(within):
		t.Fatal("server was not stopped in time")
		return nil
	}
}

func TestSupervise_ForwardsSIGTERM(t *testing.T) {
	signals := make(chan os.Signal, 1)
	done := superviseAsync(t, context.Background(), "graceful", signals)

	signals <- syscall.SIGTERM

	err := awaitExit(t, done, 10*time.Second)
	assert.NoError(t, err)
}

func TestSupervise_KillsAfterGracePeriod(t *testing.T) {
	signals := make(chan os.Signal, 1)
	done := superviseAsync(t, context.Background(), "stubborn", signals)

	start := time.Now()
	signals <- syscall.SIGTERM

	err := awaitExit(t, done, 10*time.Second)
	require.Error(t, err)
	assert.Equal(t, 128+int(syscall.SIGKILL), launcher.ExitCode(err))
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestSupervise_ContextCancelStopsServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := superviseAsync(t, ctx, "graceful", nil)

	cancel()

	err := awaitExit(t, done, 10*time.Second)
	assert.NoError(t, err)
}

func TestSupervise_ForwardsSIGHUP(t *testing.T) {
	signals := make(chan os.Signal, 2)
	done := superviseAsync(t, context.Background(), "graceful", signals)

	// The fake server only handles SIGTERM; SIGHUP's default action ends it.
	signals <- syscall.SIGHUP

	err := awaitExit(t, done, 10*time.Second)
	require.Error(t, err)
	assert.Equal(t, 128+int(syscall.SIGHUP), launcher.ExitCode(err))
}
