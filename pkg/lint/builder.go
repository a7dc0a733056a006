package lint

import "github.com/docsmith/mdxcheck/pkg/config"

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue for the given rule at a 1-based line.
func NewIssue(ruleID, filePath string, line int, message string) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			RuleID:   ruleID,
			Message:  message,
			FilePath: filePath,
			Line:     line,
		},
	}
}

// WithSeverity sets the severity.
func (b *IssueBuilder) WithSeverity(s config.Severity) *IssueBuilder {
	b.issue.Severity = s
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *IssueBuilder) WithSuggestion(s string) *IssueBuilder {
	b.issue.Suggestion = s
	return b
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
