// Package report aggregates scan violations and renders the human-readable
// audit report.
//
// The reporter groups violations per file, prints a summary table and
// per-file excerpts with the matched span emphasized, and returns
// logcheck.ErrViolationsFound when the tree is out of policy so the CLI can
// map the outcome to an exit status. Styling is selected at construction
// time and is purely cosmetic.
package report
