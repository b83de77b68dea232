package cmd

import (
	"fmt"
	"os"

	"word-mcp-launcher/core/config"
	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X word-mcp-launcher/cmd.Version=...".
var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "word-mcp-launcher",
	Short: "Container launcher for the word MCP server",
	Long: `word-mcp-launcher starts the word MCP server bound to 0.0.0.0 on the port
assigned by the hosting platform (PORT, default 8080), supervises it and exits
with its status.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and exits with the status derived from the
// returned error. It only returns when that status is 0.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Console format with ISO8601 timestamps, like an interactive CLI.
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(launcher.ExitCode(err))
}

// configError marks err as a configuration problem (exit status 78).
func configError(err error) error {
	return &launcher.ExitError{Code: launcher.ExitConfig, Err: err}
}

// loadRuntime loads the configuration and builds the logger shared by all
// subcommands.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, configError(fmt.Errorf("failed to load configuration: %w", err))
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, configError(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return cfg, logg, nil
}
