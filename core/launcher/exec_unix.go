//go:build unix

package launcher

import (
	"fmt"
	"syscall"
)

// execve replaces the current process image with the server. The PID, the
// stdio streams and signal delivery all pass to the server unchanged.
func execve(cmd Command) error {
	err := syscall.Exec(cmd.Path, cmd.Argv(), cmd.Env)
	return &ExitError{Code: startStatus(err), Err: fmt.Errorf("exec %s: %w", cmd.Path, err)}
}
