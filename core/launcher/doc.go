// Package launcher starts the word MCP server bound to the address the
// hosting platform routes traffic to.
//
// The server executable is opaque. The launcher resolves it, hands it
// `--host 0.0.0.0 --port <PORT>` and then either replaces itself with it
// (ModeExec) or runs it as its only child (ModeSupervise).
//
// # Supervision
//
// In supervise mode the child inherits stdin, stdout and stderr. SIGINT,
// SIGTERM, SIGHUP and SIGQUIT received by the launcher are forwarded to the
// child, never handled locally. After a terminating signal the child has
// Config.ShutdownTimeout to exit before it is killed. There is no restart:
// recovery belongs to the container orchestrator.
//
// # Exit codes
//
// ExitCode maps errors to the status the launcher exits with:
//   - the child's own status, or 128+N when it was killed by signal N
//   - ExitConfig (78) for an invalid PORT or launch mode
//   - ExitNotExecutable (126) when the executable cannot be run
//   - ExitNotFound (127) when the executable does not exist
//
// # Usage
//
//	l := launcher.New(cfg.Launch, cfg.Server, log)
//	err := l.Run(ctx)
//	os.Exit(launcher.ExitCode(err))
package launcher
