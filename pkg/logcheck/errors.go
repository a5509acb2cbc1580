package logcheck

import (
	"errors"
	"strings"
)

// Sentinel errors for the two ways a run can end unsuccessfully.
// These enable callers to distinguish outcomes using errors.Is().
//
// Example usage:
//
//	err := scanner.ScanDirectory(root)
//	if errors.Is(err, logcheck.ErrScanFailed) {
//	    // The scan could not complete; no report was produced.
//	}
var (
	// ErrViolationsFound indicates the scan completed and found
	// out-of-policy logging calls.
	ErrViolationsFound = errors.New("forbidden logging usages found")

	// ErrScanFailed indicates the scan could not complete, typically
	// because a candidate file could not be read.
	ErrScanFailed = errors.New("scan failed")

	// ErrUsage indicates invalid command line usage.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors and semantic codes for known
// errors. Exit code 1 is reserved for "ran successfully and found
// violations", so unclassified failures map to ExitScanError instead of a
// general-error 1: callers must always be able to distinguish "found
// problems" from "could not run".
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrViolationsFound):
		return ExitViolationsFound
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrScanFailed):
		return ExitScanError
	}

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common message shapes so they exit 2 rather than the scan-error code.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "accepts at most") {
		return ExitUsageError
	}

	return ExitScanError
}
