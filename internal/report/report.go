package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/clash-verge-rev/clash-verge-logging-check/pkg/logcheck"
)

// Reporter renders scan results and decides the process outcome. It does no
// matching of its own; it only aggregates and presents what the scanner
// produced.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	styles Styles
}

// NewReporter creates a Reporter writing the report to out and the final
// error summary to errOut.
func NewReporter(out, errOut io.Writer, styles Styles) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		styles: styles,
	}
}

// CountByFile groups violations by file path. The total violation count
// always equals the sum of the returned counts.
func CountByFile(violations []logcheck.Violation) map[string]int {
	counts := make(map[string]int, len(violations))
	for _, v := range violations {
		counts[v.File]++
	}
	return counts
}

// sortedFiles returns the keys of counts in lexicographic order so output
// is stable across runs.
func sortedFiles(counts map[string]int) []string {
	files := make([]string, 0, len(counts))
	for f := range counts {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Report renders result to the configured writers. It returns nil for a
// clean tree and ErrViolationsFound otherwise; the caller translates that
// into the process exit status.
func (r *Reporter) Report(result logcheck.ScanResult) error {
	fmt.Fprintln(r.out, r.styles.Header.Render("==== Logging Usage Check ===="))
	fmt.Fprintf(r.out, "Scanned %d rust files in %s\n",
		result.FilesScanned, result.Elapsed.Round(10*time.Microsecond))

	if len(result.Violations) == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No forbidden log::{info|warn|debug|trace} usages found."))
		return nil
	}

	counts := CountByFile(result.Violations)
	files := sortedFiles(counts)

	fmt.Fprintln(r.out, r.styles.Error.Render(
		fmt.Sprintf("Found %d forbidden logging usage(s)", len(result.Violations))))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, r.styles.Section.Render("Summary by file:"))
	r.renderCountTable(files, counts)
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, r.styles.Section.Render("Details:"))
	r.renderDetails(result.Violations, files, counts)

	r.renderGuidance()

	fmt.Fprintf(r.errOut, "%s %d violations in %d files. See details above.\n",
		r.styles.Error.Render("ERROR:"), len(result.Violations), len(files))

	return logcheck.ErrViolationsFound
}

func (r *Reporter) renderCountTable(files []string, counts map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Count", "File"})
	for _, f := range files {
		t.AppendRow(table.Row{strconv.Itoa(counts[f]) + "x", f})
	}
	t.Render()
}

func (r *Reporter) renderDetails(violations []logcheck.Violation, files []string, counts map[string]int) {
	for _, file := range files {
		fmt.Fprintf(r.out, "%s %s\n", r.styles.File.Render("File:"), file)
		fmt.Fprintf(r.out, "  %d violations\n", counts[file])
		for _, v := range violations {
			if v.File != file {
				continue
			}
			fmt.Fprintf(r.out, "    %s:%s: %s\n",
				file, r.styles.LineNo.Render(strconv.Itoa(v.LineNumber)), r.highlightMatch(v))
			if len(v.LineText) > logcheck.LineTruncateNoticeThreshold {
				// Notice only; the full line is still printed above.
				fmt.Fprintf(r.out, "      %s\n", r.styles.Muted.Render("...(line truncated)"))
			}
		}
		fmt.Fprintln(r.out)
	}
}

// highlightMatch wraps the matched span in the match style; the rest of the
// line is printed unchanged.
func (r *Reporter) highlightMatch(v logcheck.Violation) string {
	return v.LineText[:v.ColumnStart] +
		r.styles.Match.Render(v.LineText[v.ColumnStart:v.ColumnEnd]) +
		v.LineText[v.ColumnEnd:]
}

func (r *Reporter) renderGuidance() {
	fmt.Fprintln(r.out, r.styles.Section.Render("Guidance:"))
	fmt.Fprintf(r.out, "  - Allowed location: %s\n", r.styles.Allowed.Render(logcheck.AllowedModulePath))
	fmt.Fprintln(r.out, "  - Suggested fixes:")
	fmt.Fprintln(r.out, "    * Move logging calls to the allowed module.")
	fmt.Fprintln(r.out, "    * Use other facilities (e.g. return values, events) instead of direct log calls where appropriate.")
	fmt.Fprintln(r.out)
}
