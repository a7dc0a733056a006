package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/docsmith/mdxcheck/internal/ui/pretty"
	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
	"github.com/docsmith/mdxcheck/pkg/runner"
)

// TextReporter formats results as styled terminal output: a header, the
// file count, an Errors section, a Warnings section, and a summary line.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintln(r.bw, r.styles.Header.Render("mdxcheck"))

	if result == nil {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return nil
	}

	fmt.Fprintf(r.bw, "Mode: %s\n", result.Mode)
	fmt.Fprintf(r.bw, "Checked %d %s\n", result.Stats.FilesChecked,
		fileWord(result.Stats.FilesChecked))

	if result.Mode == runner.ModeInvalid {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("Target is neither a document file nor a directory."))
	}

	r.section("Errors", result.IssuesBySeverity(config.SeverityError))
	r.section("Warnings", result.IssuesBySeverity(config.SeverityWarning))
	r.section("Info", result.IssuesBySeverity(config.SeverityInfo))

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.Divider(r.opts.Writer))
	fmt.Fprint(r.bw, r.styles.FormatSummaryLine(result.Stats))

	return nil
}

// section writes one severity bucket, skipped entirely when empty.
func (r *TextReporter) section(title string, issues []lint.Issue) {
	if len(issues) == 0 {
		return
	}

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.Section.Render(title))
	for _, issue := range issues {
		fmt.Fprintln(r.bw, r.styles.FormatIssue(issue))
	}
}

func fileWord(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
