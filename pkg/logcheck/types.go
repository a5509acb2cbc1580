package logcheck

import "time"

// Violation is one forbidden logging call found outside the allowed module.
// Violations are immutable once constructed: the scanner creates them and
// the reporter only reads them.
type Violation struct {
	// File is the path of the source file containing the match, in the
	// form it was encountered during traversal.
	File string

	// LineNumber is the 1-based line index within the file.
	LineNumber int

	// ColumnStart and ColumnEnd are 0-based byte offsets within LineText
	// delimiting the matched substring.
	// Invariant: ColumnStart <= ColumnEnd <= len(LineText).
	ColumnStart int
	ColumnEnd   int

	// LineText is the full text of the containing line, without the
	// trailing newline.
	LineText string
}

// ScanResult is the outcome of one directory scan. All state is transient;
// a result is rebuilt from scratch on every run.
type ScanResult struct {
	// Violations in traversal order: file discovery order first, then
	// in-file match order.
	Violations []Violation

	// FilesScanned counts every candidate file encountered, including
	// files later exempted by the allowed-module check.
	FilesScanned int

	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}
