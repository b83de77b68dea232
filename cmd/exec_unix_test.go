//go:build unix

package cmd

import (
	"bufio"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ExecMode(t *testing.T) {
	clearLaunchEnv(t)

	code, out := execute(t, []string{fakeServerEnv + "=5", "PORT=3000", "LAUNCH_MODE=exec"}, "start")
	assert.Equal(t, 5, code)
	assert.Contains(t, out, "fake server --host 0.0.0.0 --port 3000")
	assert.Contains(t, out, "Replacing launcher with server")
}

// serverPID reads the launcher's stdout until the fake server reports its pid.
func serverPID(t *testing.T, r io.Reader) int {
	t.Helper()
	found := make(chan int, 1)
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if pid, ok := strings.CutPrefix(sc.Text(), "pid="); ok {
				n, _ := strconv.Atoi(pid)
				found <- n
				return
			}
		}
	}()

	select {
	case pid := <-found:
		require.Positive(t, pid)
		return pid
	case <-time.After(10 * time.Second):
		t.Fatal("server did not start")
		return 0
	}
}

func TestExecute_SIGTERMStopsServer(t *testing.T) {
	clearLaunchEnv(t)

	launch := exec.Command(os.Args[0])
	launch.Env = append(os.Environ(), executeEnv+"=start", fakeServerEnv+"=block", "PORT=3000")
	stdout, err := launch.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, launch.Start())
	t.Cleanup(func() { _ = launch.Process.Kill() })

	pid := serverPID(t, stdout)
	require.NoError(t, launch.Process.Signal(syscall.SIGTERM))

	done := make(chan error, 1)
	go func() { done <- launch.Wait() }()

	select {
	case err := <-done:
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 128+int(syscall.SIGTERM), exitErr.ExitCode())
	case <-time.After(15 * time.Second):
		t.Fatal("launcher did not exit after SIGTERM")
	}

	// The server must be gone together with the launcher.
	assert.Eventually(t, func() bool {
		return errors.Is(syscall.Kill(pid, 0), syscall.ESRCH)
	}, 5*time.Second, 50*time.Millisecond)
}
