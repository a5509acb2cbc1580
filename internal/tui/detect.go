package tui

import (
	"os"

	"golang.org/x/term"
)

// ColorsEnabled reports whether report output should carry ANSI styling.
//
// Styling is disabled if:
//   - NO_COLOR is set (accessibility/automation convention)
//   - CI is set (common CI/CD convention)
//   - stdout is not a terminal (piped or redirected output)
func ColorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
