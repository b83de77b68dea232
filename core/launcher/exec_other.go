//go:build !unix

package launcher

import "fmt"

func execve(cmd Command) error {
	return &ExitError{Code: ExitConfig, Err: fmt.Errorf("%w: %s", ErrUnsupported, ModeExec)}
}
