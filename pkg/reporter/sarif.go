package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
	"github.com/docsmith/mdxcheck/pkg/runner"
)

// SARIF tool information.
const (
	toolName = "mdxcheck"
	toolURI  = "https://github.com/docsmith/mdxcheck"
)

// SARIFReporter formats results as SARIF (Static Analysis Results
// Interchange Format), widely supported by CI systems including GitHub Code
// Scanning.
//
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
type SARIFReporter struct {
	opts Options
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	if r.opts.ToolVersion != "" {
		run.Tool.Driver.WithVersion(r.opts.ToolVersion)
	}

	issues := collectIssues(result)

	// Rule definitions, sorted for stable output.
	ruleSet := make(map[string]lint.Issue)
	fileSet := make(map[string]struct{})
	for _, issue := range issues {
		if _, exists := ruleSet[issue.RuleID]; !exists {
			ruleSet[issue.RuleID] = issue
		}
		fileSet[filepath.ToSlash(issue.FilePath)] = struct{}{}
	}

	ruleIDs := make([]string, 0, len(ruleSet))
	for id := range ruleSet {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	for _, id := range ruleIDs {
		rule := run.AddRule(id)
		if name := ruleSet[id].RuleName; name != "" {
			rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(name))
		}
	}

	files := make([]string, 0, len(fileSet))
	for file := range fileSet {
		files = append(files, file)
	}
	sort.Strings(files)

	for _, file := range files {
		run.AddDistinctArtifact(file)
	}

	for _, issue := range issues {
		filePath := filepath.ToSlash(issue.FilePath)

		region := sarif.NewRegion().WithStartLine(issue.Line)
		physicalLocation := sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewSimpleArtifactLocation(filePath)).
			WithRegion(region)

		sarifResult := sarif.NewRuleResult(issue.RuleID).
			WithMessage(sarif.NewTextMessage(issue.Message)).
			WithLevel(severityToSARIFLevel(issue.Severity)).
			WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(physicalLocation),
			})

		run.AddResult(sarifResult)
	}

	report.AddRun(run)

	if err := report.PrettyWrite(r.opts.Writer); err != nil {
		return fmt.Errorf("write sarif report: %w", err)
	}
	return nil
}

// collectIssues flattens a result into file-then-line order.
func collectIssues(result *runner.Result) []lint.Issue {
	if result == nil {
		return nil
	}
	var issues []lint.Issue
	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		issues = append(issues, file.Result.Issues...)
	}
	return issues
}

// SARIF severity levels: "error", "warning", "note", "none".
func severityToSARIFLevel(s config.Severity) string {
	switch s {
	case config.SeverityError:
		return "error"
	case config.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
