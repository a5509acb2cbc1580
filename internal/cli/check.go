package cli

import (
	"github.com/spf13/cobra"

	"github.com/clash-verge-rev/clash-verge-logging-check/internal/files/scanner"
	"github.com/clash-verge-rev/clash-verge-logging-check/internal/logging"
	"github.com/clash-verge-rev/clash-verge-logging-check/internal/report"
)

// runCheck is the root command's workhorse: it scans the requested tree and
// renders the report. The returned error carries the run outcome; main maps
// it to the process exit status via logcheck.ExitCodeForError.
func runCheck(cmd *cobra.Command, args []string) error {
	noColor := getNoColorFlag(cmd)
	log := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	result, err := scanner.NewScanner(log).ScanDirectory(root)
	if err != nil {
		// No partial report: a failed scan prints only the error.
		log.Error("%v", err)
		return err
	}

	r := report.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), report.StylesFor(noColor))
	return r.Report(result)
}
