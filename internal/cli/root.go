package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clash-verge-rev/clash-verge-logging-check/pkg/logcheck"
)

var rootCmd = &cobra.Command{
	Use:   "logcheck [path]",
	Short: "Audit direct log:: usage outside the allowed logging module",
	Long: `logcheck recursively scans a Rust source tree and reports every direct
log::info, log::warn, log::debug or log::trace call found outside the
designated logging module (src/utils/logging).

With no argument the scan starts at the current working directory. Build
output (target), version control metadata (.git) and dependency caches
(node_modules) are never descended into.

Exit Codes:
  0  - Scan completed, no violations found
  1  - Scan completed, one or more violations found
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Scan could not complete (I/O or traversal error)`,
	Args:              validateArgs,
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command. Every failure is reported to stderr exactly
// once: violations end with the reporter's one-line summary, scan failures
// are logged inside runCheck, and everything else (flag or argument misuse,
// unknown subcommands) is printed here.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil &&
		!errors.Is(err, logcheck.ErrViolationsFound) &&
		!errors.Is(err, logcheck.ErrScanFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose diagnostics on stderr")
	rootCmd.Flags().Bool("no-color", false, "Disable ANSI styling in the report")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most one path argument, received %d", logcheck.ErrUsage, len(args))
	}
	return nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// getNoColorFlag safely retrieves the no-color flag value
func getNoColorFlag(cmd *cobra.Command) bool {
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get no-color flag: %v\n", err)
		return false
	}
	return noColor
}
