package logcheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General "the check failed" result (violations found)
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Scan completed, no violations found
	ExitViolationsFound = 1  // Scan completed, one or more violations found
	ExitUsageError      = 2  // CLI usage error (invalid args or flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitScanError       = 10 // Scan could not complete (I/O or traversal failure)
)

const (
	// SourceFileExtension is the extension of files subject to the policy.
	SourceFileExtension = ".rs"

	// AllowedModulePath is the path segment that exempts a file from the
	// policy. Files whose path contains this segment may use the log::
	// macros directly.
	AllowedModulePath = "src/utils/logging"

	// AllowedModuleFile is the single-file form of the allowed module.
	AllowedModuleFile = "src/utils/logging.rs"

	// ForbiddenPattern matches direct log::info/warn/debug/trace calls as
	// whole words. The word boundaries keep longer identifiers such as
	// xlog::infoy from matching.
	ForbiddenPattern = `\blog::(info|warn|debug|trace)\b`

	// LineTruncateNoticeThreshold is the line length, in bytes, above which
	// the reporter appends a truncation notice to the printed excerpt.
	// The line itself is still printed in full.
	LineTruncateNoticeThreshold = 200
)
