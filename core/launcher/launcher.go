package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"word-mcp-launcher/core/server"

	"go.uber.org/zap"
)

// forwardedSignals are relayed to the server instead of stopping the launcher.
var forwardedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

// Command is a fully resolved server invocation.
type Command struct {
	// Path is the resolved executable.
	Path string
	// Args are the arguments after argv[0].
	Args []string
	// Env is the environment handed to the server.
	Env []string
}

// Argv returns the argument vector including argv[0].
func (c Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// Launcher starts the word MCP server bound to the platform-assigned port.
type Launcher struct {
	cfg    Config
	server server.Config
	logger *zap.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a launcher that inherits the current process's stdio streams.
func New(cfg Config, srv server.Config, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{
		cfg:    cfg,
		server: srv,
		logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command validates the configuration and resolves the server executable.
func (l *Launcher) Command() (Command, error) {
	if err := l.server.Validate(); err != nil {
		return Command{}, err
	}
	if !l.cfg.IsValidMode() {
		return Command{}, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidMode, l.cfg.Mode, ModeSupervise, ModeExec)
	}

	path, err := Resolve(l.cfg.Binary)
	if err != nil {
		return Command{}, err
	}

	env := setEnv(os.Environ(), "HOST", server.Host)
	env = setEnv(env, "PORT", l.server.PortOrDefault())

	return Command{Path: path, Args: l.server.Args(), Env: env}, nil
}

// Resolve finds the server executable on PATH, or checks it directly when
// binary contains a path separator.
func Resolve(binary string) (string, error) {
	if binary == "" {
		binary = DefaultBinary
	}

	path, err := exec.LookPath(binary)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, binary)
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("%w: %s", ErrNotExecutable, binary)
	default:
		return "", fmt.Errorf("resolve %s: %w", binary, err)
	}
}

// Run resolves the command and starts the server according to the mode.
// In exec mode Run only returns on failure. In supervise mode it returns once
// the server has exited; a non-zero status is reported as *ExitError.
func (l *Launcher) Run(ctx context.Context) error {
	cmd, err := l.Command()
	if err != nil {
		return err
	}

	log := l.logger.With(
		zap.String("binary", cmd.Path),
		zap.String("address", l.server.Address()),
		zap.String("mode", l.cfg.Mode),
	)

	if l.cfg.Mode == ModeExec {
		log.Info("Replacing launcher with server", zap.Strings("args", cmd.Args))
		_ = l.logger.Sync()
		return execve(cmd)
	}

	sigCh := make(chan os.Signal, len(forwardedSignals))
	signal.Notify(sigCh, forwardedSignals...)
	defer signal.Stop(sigCh)

	return l.Supervise(ctx, cmd, sigCh)
}

// Supervise starts cmd as the only child, relays signals to it and waits
// for it to exit. A terminating signal or ctx cancellation starts the
// shutdown grace period after which the child is killed.
func (l *Launcher) Supervise(ctx context.Context, cmd Command, signals <-chan os.Signal) error {
	child := exec.Command(cmd.Path, cmd.Args...)
	child.Env = cmd.Env
	child.Stdin = l.Stdin
	child.Stdout = l.Stdout
	child.Stderr = l.Stderr
	child.SysProcAttr = sysProcAttr()

	started := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		// Pdeathsig follows the thread that forked the child, so that thread
		// stays alive and reserved until the server has exited.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := child.Start(); err != nil {
			started <- err
			return
		}
		started <- nil
		done <- child.Wait()
	}()

	if err := <-started; err != nil {
		return &ExitError{Code: startStatus(err), Err: fmt.Errorf("start %s: %w", cmd.Path, err)}
	}

	log := l.logger.With(zap.Int("pid", child.Process.Pid))
	log.Info("Server started", zap.String("command", cmd.String()))

	var timer *time.Timer
	var grace <-chan time.Time
	startGrace := func() {
		if timer != nil {
			return
		}
		timer = time.NewTimer(l.cfg.ShutdownTimeout())
		grace = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	ctxDone := ctx.Done()
	for {
		select {
		case err := <-done:
			code := waitStatus(err)
			if code == 0 {
				log.Info("Server exited")
				return nil
			}
			log.Warn("Server exited", zap.Int("exit_code", code), zap.Error(err))
			return &ExitError{Code: code, Err: fmt.Errorf("server exited: %w", err)}

		case sig := <-signals:
			log.Info("Forwarding signal", zap.String("signal", sig.String()))
			l.signal(log, child.Process, sig)
			if isTerminating(sig) {
				startGrace()
			}

		case <-ctxDone:
			ctxDone = nil
			log.Info("Stopping server")
			l.signal(log, child.Process, syscall.SIGTERM)
			startGrace()

		case <-grace:
			grace = nil
			log.Warn("Server did not stop in time, killing",
				zap.Duration("grace", l.cfg.ShutdownTimeout()))
			if err := child.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				log.Error("Failed to kill server", zap.Error(err))
			}
		}
	}
}

func (l *Launcher) signal(log *zap.Logger, p *os.Process, sig os.Signal) {
	if err := p.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
		log.Warn("Failed to signal server", zap.String("signal", sig.String()), zap.Error(err))
	}
}

func isTerminating(sig os.Signal) bool {
	return sig == os.Interrupt || sig == syscall.SIGTERM || sig == syscall.SIGQUIT
}

// setEnv returns env with key set to value, replacing any earlier entry.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			out = append(out, kv)
		}
	}
	return append(out, prefix+value)
}
