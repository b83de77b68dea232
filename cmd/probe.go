package cmd

import (
	"context"
	"fmt"
	"time"

	"word-mcp-launcher/core/launcher"
	"word-mcp-launcher/feature/probe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the running server answers MCP requests",
	Long: `Connects to http://127.0.0.1:$PORT$PROBE_PATH, initializes an MCP session,
pings the server and lists its tools. Intended as the container HEALTHCHECK.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Probe.Timeout())
		defer cancel()

		endpoint := probe.Endpoint(cfg.Server, cfg.Probe.Path)
		res, err := probe.New(Version, logg).ProbeHTTP(ctx, endpoint)
		if err != nil {
			return &launcher.ExitError{Code: launcher.ExitFailure, Err: err}
		}

		logg.Debug("Server ready", zap.String("endpoint", res.Endpoint), zap.Int("tools", res.Tools))
		fmt.Fprintf(cmd.OutOrStdout(), "ok %s tools=%d latency=%s\n", res.Endpoint, res.Tools, res.Latency.Round(time.Millisecond))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
