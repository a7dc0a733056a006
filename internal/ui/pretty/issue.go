package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
	"github.com/docsmith/mdxcheck/pkg/runner"
)

const (
	defaultWidth = 80
	maxRuleWidth = 100
)

// FormatIssue formats a single issue as "path:line — message".
func (s *Styles) FormatIssue(issue lint.Issue) string {
	location := fmt.Sprintf("%s:%d",
		s.FilePath.Render(issue.FilePath),
		issue.Line,
	)
	return fmt.Sprintf("  %s — %s", location, s.Message.Render(issue.Message))
}

// FormatSummaryLine formats run statistics as a single line.
// Example: "2 errors, 3 warnings in 5 files".
func (s *Styles) FormatSummaryLine(stats runner.Stats) string {
	if stats.IssuesTotal == 0 {
		return s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesChecked)) + "\n"
	}

	var parts []string
	if errors := stats.Errors(); errors > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", errors, plural(errors, "error"))))
	}
	if warnings := stats.Warnings(); warnings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning"))))
	}
	if infos := stats.IssuesBySeverity[string(config.SeverityInfo)]; infos > 0 {
		parts = append(parts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	fileWord := plural(stats.FilesChecked, "file")
	return fmt.Sprintf("%s in %d %s\n", strings.Join(parts, ", "), stats.FilesChecked, fileWord)
}

// Divider returns a horizontal rule sized to the terminal, capped for
// readability.
func (s *Styles) Divider(w io.Writer) string {
	width := defaultWidth
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	if width > maxRuleWidth {
		width = maxRuleWidth
	}
	return s.Dim.Render(strings.Repeat("-", width))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
