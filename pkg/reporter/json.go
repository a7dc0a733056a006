package reporter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/docsmith/mdxcheck/pkg/runner"
)

// JSONReporter emits the full result as JSON for machine consumption.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// jsonIssue is the wire shape of a single issue.
type jsonIssue struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}

// jsonReport is the wire shape of a run result.
type jsonReport struct {
	Mode         string      `json:"mode"`
	FilesChecked int         `json:"files_checked"`
	Errors       int         `json:"errors"`
	Warnings     int         `json:"warnings"`
	Issues       []jsonIssue `json:"issues"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	report := jsonReport{Issues: []jsonIssue{}}

	if result != nil {
		report.Mode = string(result.Mode)
		report.FilesChecked = result.Stats.FilesChecked
		report.Errors = result.Stats.Errors()
		report.Warnings = result.Stats.Warnings()

		for _, file := range result.Files {
			if file.Result == nil {
				continue
			}
			for _, issue := range file.Result.Issues {
				report.Issues = append(report.Issues, jsonIssue{
					Path:     issue.FilePath,
					Line:     issue.Line,
					Severity: string(issue.Severity),
					Rule:     issue.RuleID,
					Message:  issue.Message,
				})
			}
		}
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
