// Package sourcemap maps byte offsets in a file's text to human-facing
// line and column positions.
package sourcemap

import "strings"

// Position locates one matched span within a file's text.
type Position struct {
	Line        int    // 1-based line number
	LineText    string // full text of the containing line, without trailing newline
	ColumnStart int    // 0-based byte offset of the match within LineText
	ColumnEnd   int    // 0-based byte offset just past the match within LineText
}

// Locate resolves the span [start, end) of text into a Position.
//
// Offsets are byte offsets throughout: multi-byte characters earlier on the
// line shift the reported columns, which is acceptable for an ASCII-only
// pattern whose columns are read by humans. Matches on the first line (no
// preceding newline) and on the last line (no trailing newline) are handled
// without out-of-bounds access.
func Locate(text string, start, end int) Position {
	before := text[:start]
	line := strings.Count(before, "\n") + 1

	lineStart := 0
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		lineStart = i + 1
	}

	lineEnd := len(text)
	if i := strings.IndexByte(text[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}

	return Position{
		Line:        line,
		LineText:    text[lineStart:lineEnd],
		ColumnStart: start - lineStart,
		ColumnEnd:   end - lineStart,
	}
}
