package runner

import (
	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// FileOutcome pairs a processed path with its check result.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the check result for this file. Always non-nil for
	// accumulated outcomes; an unreadable file gets a synthetic result.
	Result *lint.FileResult
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesChecked is the number of files processed.
	FilesChecked int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[string]int
}

// Errors returns the total error count.
func (s Stats) Errors() int {
	return s.IssuesBySeverity[string(config.SeverityError)]
}

// Warnings returns the total warning count.
func (s Stats) Warnings() int {
	return s.IssuesBySeverity[string(config.SeverityWarning)]
}

// Result is the overall run result. It is the run's single accumulation
// point: outcomes append in file order and are never mutated afterwards.
type Result struct {
	// Mode records how the input file set was selected.
	Mode Mode

	// Files contains the outcome for each processed file, in processing
	// order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// NewResult creates an empty Result for the given discovery mode.
func NewResult(mode Mode) *Result {
	return &Result{
		Mode: mode,
		Stats: Stats{
			IssuesBySeverity: make(map[string]int),
		},
	}
}

// HasFailures reports whether any error-severity issues occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.Errors() > 0
}

// IssuesBySeverity returns every issue with the given severity across all
// files, in file-then-line order.
func (r *Result) IssuesBySeverity(sev config.Severity) []lint.Issue {
	var issues []lint.Issue
	for _, file := range r.Files {
		if file.Result == nil {
			continue
		}
		for _, issue := range file.Result.Issues {
			if issue.Severity == sev {
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// accumulate appends a file outcome and updates statistics.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.FilesChecked++

	if outcome.Result == nil {
		return
	}

	count := len(outcome.Result.Issues)
	r.Stats.IssuesTotal += count
	if count > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, issue := range outcome.Result.Issues {
		severity := string(issue.Severity)
		if severity == "" {
			severity = string(config.SeverityWarning)
		}
		r.Stats.IssuesBySeverity[severity]++
	}
}
