package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clash-verge-rev/clash-verge-logging-check/internal/tui"
)

// Styles bundles the lipgloss styles used to render a report. Styling is
// purely cosmetic; the report text is identical with styles disabled.
type Styles struct {
	Header  lipgloss.Style // report banner
	Section lipgloss.Style // section headings
	Success lipgloss.Style // clean-tree message
	Error   lipgloss.Style // violation totals and the ERROR summary prefix
	Match   lipgloss.Style // the matched span inside an excerpt
	File    lipgloss.Style // file path labels in the detail section
	LineNo  lipgloss.Style // line numbers in excerpts
	Muted   lipgloss.Style // truncation notices
	Allowed lipgloss.Style // the allowed module path in the guidance block
}

// DefaultStyles returns the colored styles used for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Section: lipgloss.NewStyle().Bold(true).Underline(true),
		Success: lipgloss.NewStyle().Foreground(tui.ColorSuccess),
		Error:   lipgloss.NewStyle().Foreground(tui.ColorError).Bold(true),
		Match:   lipgloss.NewStyle().Foreground(tui.ColorError).Bold(true),
		File:    lipgloss.NewStyle().Foreground(tui.ColorInfo).Bold(true),
		LineNo:  lipgloss.NewStyle().Foreground(tui.ColorWarning),
		Muted:   lipgloss.NewStyle().Faint(true),
		Allowed: lipgloss.NewStyle().Foreground(tui.ColorSuccess).Bold(true),
	}
}

// PlainStyles returns pass-through styles for non-terminal output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:  plain,
		Section: plain,
		Success: plain,
		Error:   plain,
		Match:   plain,
		File:    plain,
		LineNo:  plain,
		Muted:   plain,
		Allowed: plain,
	}
}

// StylesFor selects styles from terminal detection and the no-color flag.
func StylesFor(noColor bool) Styles {
	if noColor || !tui.ColorsEnabled() {
		return PlainStyles()
	}
	return DefaultStyles()
}
