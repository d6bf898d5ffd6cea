// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that digitsum will use at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (config.yaml)
  3. Environment variables (highest priority)`,
	Example: `  # Show current configuration
  digitsum config

  # Show with custom config file
  digitsum config --config /etc/digitsum/config.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := GetConfig()
		if cfg == nil {
			if loadErr := GetConfigLoadError(); loadErr != nil {
				return fmt.Errorf("configuration not loaded: %w", loadErr)
			}
			return fmt.Errorf("configuration not loaded")
		}

		out := cmd.OutOrStdout()

		_, _ = fmt.Fprintln(out, "=== digitsum Effective Configuration ===")
		_, _ = fmt.Fprintln(out)

		// Output Configuration
		_, _ = fmt.Fprintln(out, "📁 Output Configuration:")
		_, _ = fmt.Fprintf(out, "   Labeled:          %v\n", cfg.Output.Labeled)
		_, _ = fmt.Fprintf(out, "   Trailing Newline: %v\n", cfg.Output.TrailingNewline)
		_, _ = fmt.Fprintln(out)

		// Source
		source := cfg.ConfigFilePath
		if source == "" {
			source = "(defaults and environment variables only)"
		}
		_, _ = fmt.Fprintf(out, "Config file: %s\n", source)

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
}
