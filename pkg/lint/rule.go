// Package lint provides the rule engine, issue model, and registry for
// mdxcheck.
package lint

import "github.com/docsmith/mdxcheck/pkg/config"

// Issue represents a single problem found in a document.
// Issues are never mutated after creation.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "components").
	RuleName string

	// Message is the human-readable description of the problem.
	Message string

	// Severity indicates the importance of the issue.
	Severity config.Severity

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number the issue is attributed to.
	Line int

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string
}

// Rule defines the interface that all checkers implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "DX001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Tags returns categorization tags for this rule (e.g., ["headings"]).
	Tags() []string

	// Apply executes the rule against the given context and returns issues.
	//
	// Rules must:
	//   - Be stateless across files; all per-file state lives in Apply.
	//   - Set an explicit severity on every issue they emit.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Issue, error)
}
