package cmd

import (
	"encoding/json"
	"fmt"

	"word-mcp-launcher/core/storage"
	"word-mcp-launcher/feature/preflight"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the preflight checks without launching",
	Long:  `Validates PORT, locates the server executable and, when enabled, verifies the storage bucket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var client storage.Client
		if cfg.Storage.Enabled {
			if client, err = storage.NewClient(cfg.Storage); err != nil {
				return configError(err)
			}
		}

		report := preflight.NewService(cfg, client, logg).Run(cmd.Context())

		out := cmd.OutOrStdout()
		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return report.Err()
		}

		fmt.Fprintln(out, "=== Preflight ===")
		fmt.Fprintf(out, "Port:    %s (%s)\n", report.Port.Status, report.Port.Address)
		fmt.Fprintf(out, "Binary:  %s (%s)\n", report.Binary.Status, describe(report.Binary.Path, report.Binary.Error))
		fmt.Fprintf(out, "Storage: %s (%s)\n", report.Storage.Status, describe(report.Storage.Bucket, report.Storage.Error))
		if report.Passed {
			fmt.Fprintln(out, "Result:  ok")
		} else {
			fmt.Fprintln(out, "Result:  failed")
		}

		return report.Err()
	},
}

func describe(value, errMsg string) string {
	if errMsg != "" {
		return errMsg
	}
	return value
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
	RootCmd.AddCommand(checkCmd)
}
