package sourcemap

import (
	"strings"
	"testing"
)

func TestLocate_FirstLine(t *testing.T) {
	text := "log::info(\"boot\");\nfn main() {}\n"
	start := strings.Index(text, "log::info")
	pos := Locate(text, start, start+len("log::info"))

	if pos.Line != 1 {
		t.Errorf("Line = %d, want 1", pos.Line)
	}
	if pos.LineText != `log::info("boot");` {
		t.Errorf("LineText = %q", pos.LineText)
	}
	if pos.ColumnStart != 0 {
		t.Errorf("ColumnStart = %d, want 0", pos.ColumnStart)
	}
	if pos.ColumnEnd != len("log::info") {
		t.Errorf("ColumnEnd = %d, want %d", pos.ColumnEnd, len("log::info"))
	}
}

func TestLocate_MiddleLine(t *testing.T) {
	// Line 2 carries the match; lines 1 and 3 must not influence the result.
	text := "fn setup() {\n    log::warn(\"x\");\n}\n"
	start := strings.Index(text, "log::warn")
	pos := Locate(text, start, start+len("log::warn"))

	if pos.Line != 2 {
		t.Errorf("Line = %d, want 2", pos.Line)
	}
	if pos.LineText != `    log::warn("x");` {
		t.Errorf("LineText = %q", pos.LineText)
	}
	if pos.ColumnStart != 4 {
		t.Errorf("ColumnStart = %d, want 4", pos.ColumnStart)
	}
	if pos.ColumnEnd != 4+len("log::warn") {
		t.Errorf("ColumnEnd = %d, want %d", pos.ColumnEnd, 4+len("log::warn"))
	}
}

func TestLocate_LastLineNoTrailingNewline(t *testing.T) {
	text := "fn a() {}\nlog::debug(\"tail\")"
	start := strings.Index(text, "log::debug")
	pos := Locate(text, start, start+len("log::debug"))

	if pos.Line != 2 {
		t.Errorf("Line = %d, want 2", pos.Line)
	}
	if pos.LineText != `log::debug("tail")` {
		t.Errorf("LineText = %q", pos.LineText)
	}
	if pos.ColumnEnd != len("log::debug") {
		t.Errorf("ColumnEnd = %d, want %d", pos.ColumnEnd, len("log::debug"))
	}
}

func TestLocate_SpanAtEndOfText(t *testing.T) {
	text := "log::trace"
	pos := Locate(text, 0, len(text))

	if pos.Line != 1 {
		t.Errorf("Line = %d, want 1", pos.Line)
	}
	if pos.LineText != text {
		t.Errorf("LineText = %q, want %q", pos.LineText, text)
	}
	if pos.ColumnStart != 0 || pos.ColumnEnd != len(text) {
		t.Errorf("columns = [%d, %d), want [0, %d)", pos.ColumnStart, pos.ColumnEnd, len(text))
	}
}

func TestLocate_ColumnsAreByteOffsets(t *testing.T) {
	// Multi-byte characters before the match shift byte columns; that is
	// the documented contract.
	text := "// héllo\nlet x = log::info;"
	start := strings.Index(text, "log::info")
	pos := Locate(text, start, start+len("log::info"))

	if pos.Line != 2 {
		t.Errorf("Line = %d, want 2", pos.Line)
	}
	wantCol := len("let x = ")
	if pos.ColumnStart != wantCol {
		t.Errorf("ColumnStart = %d, want %d", pos.ColumnStart, wantCol)
	}
}

func TestLocate_InvariantHolds(t *testing.T) {
	texts := []string{
		"log::info",
		"a\nlog::warn\nb",
		"\n\nlog::debug(\"x\");\n",
		"prefix log::trace suffix",
	}
	for _, text := range texts {
		start := strings.Index(text, "log::")
		end := start + 9
		if end > len(text) {
			end = len(text)
		}
		pos := Locate(text, start, end)
		if pos.ColumnStart > pos.ColumnEnd || pos.ColumnEnd > len(pos.LineText) {
			t.Errorf("invariant broken for %q: [%d, %d) in %q",
				text, pos.ColumnStart, pos.ColumnEnd, pos.LineText)
		}
	}
}
