// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zorak1103/digitsum/internal/config"
	"github.com/zorak1103/digitsum/internal/digit"
	apperrors "github.com/zorak1103/digitsum/internal/errors"
	"github.com/zorak1103/digitsum/internal/version"
)

var (
	cfgFile       string
	verbose       bool
	cfg           *config.Config
	errConfigLoad error
)

var rootCmd = &cobra.Command{
	Use:   "digitsum <integer>",
	Short: "Sum the decimal digits of an integer",
	Long: `digitsum parses a single signed base-10 integer argument and prints
the sum of the decimal digits of its absolute value.

Negative inputs yield the same digit sum as their positive counterparts:
the sign carries no digits. An input of 0 prints 0.`,
	Example: `  # Sum the digits of a positive integer
  digitsum 123

  # Negative inputs sum the same as positive ones
  digitsum -123

  # Labeled output (config: output.labeled)
  DIGITSUM_OUTPUT_LABELED=true digitsum 999`,
	Version: version.GetFullVersion(),
	Args:    exactlyOneInteger,
	// Keep the usage block out of error output; diagnostics alone go to
	// stderr, and cobra would otherwise print usage to the out-writer
	// when one is set.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		skipConfig := cmd.Name() == "help" || cmd.Name() == "completion"
		if skipConfig {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			// Store config load error; the tool still functions on defaults,
			// so the error is surfaced in verbose mode rather than thrown.
			errConfigLoad = err
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v\n", err)
			}
		}

		if verbose && cfg != nil && cfg.ConfigFilePath != "" {
			fmt.Fprintf(os.Stderr, "Loaded configuration from: %s\n", cfg.ConfigFilePath)
		}

		return nil
	},
	RunE: runSum,
}

// exactlyOneInteger enforces the single-argument arity of the root command.
// Any other count is a usage error; cobra prints the diagnostic to stderr,
// and Execute maps the error to exit status 1.
func exactlyOneInteger(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &apperrors.UsageError{Got: len(args)}
	}
	return nil
}

func runSum(cmd *cobra.Command, args []string) error {
	n, err := digit.Parse(args[0])
	if err != nil {
		// Parse and usage errors share exit status 1.
		return err
	}

	sum := digit.Sum(n)

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "digit sum of %d = %d\n", n, sum)
	}

	labeled := false
	trailingNewline := true
	if cfg != nil {
		labeled = cfg.Output.Labeled
		trailingNewline = cfg.Output.TrailingNewline
	}

	// Write output to stdout; errors writing to stdout are not actionable in CLI context
	if labeled {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "digitSum(%d) = %d", n, sum)
	} else {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d", sum)
	}
	if trailingNewline {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// normalizeArgs inserts the "--" terminator ahead of the first argument that
// looks like a negative number, so pflag does not read "-123" as a flag
// cluster. Flags placed before the number are still parsed normally.
func normalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			normalized := make([]string, 0, len(args)+1)
			normalized = append(normalized, args[:i]...)
			normalized = append(normalized, "--")
			normalized = append(normalized, args[i:]...)
			return normalized
		}
	}
	return args
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Every error path terminates the process with status 1.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// GetConfigLoadError returns any error encountered during config loading.
// Returns nil if configuration loaded successfully or was not attempted.
func GetConfigLoadError() error {
	return errConfigLoad
}
