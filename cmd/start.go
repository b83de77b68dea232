package cmd

import (
	"fmt"

	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/core/logger"
	"word-mcp-launcher/core/storage"
	"word-mcp-launcher/feature/preflight"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the word MCP server",
	Long: `Runs the preflight checks, then starts the server with
--host 0.0.0.0 --port $PORT and waits for it to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		logg = logger.WithLaunch(logg, uuid.NewString())
		zap.ReplaceGlobals(logg)

		l := launcher.New(cfg.Launch, cfg.Server, logg)

		if dryRun {
			c, err := l.Command()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		}

		var client storage.Client
		if cfg.Storage.Enabled {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return configError(err)
			}
		}

		report := preflight.NewService(cfg, client, logg).Run(cmd.Context())
		if err := report.Err(); err != nil {
			return err
		}

		logg.Info("Launching server",
			zap.String("version", Version),
			zap.String("binary", report.Binary.Path),
			zap.String("address", cfg.Server.Address()),
			zap.String("mode", cfg.Launch.Mode),
		)

		return l.Run(cmd.Context())
	},
}

func init() {
	startCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the server command line and exit")
	RootCmd.AddCommand(startCmd)
}
