package rules

import (
	"fmt"
	"regexp"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// headingRe matches an ATX heading at the start of a line: 1-6 hashes
// followed by whitespace.
//
//nolint:gochecknoglobals // Immutable pattern compiled once at process start
var headingRe = regexp.MustCompile(`^(#{1,6})\s`)

// HeadingStructureRule validates heading level sequencing and presence.
type HeadingStructureRule struct {
	lint.BaseRule
}

// NewHeadingStructureRule creates a new heading structure rule.
func NewHeadingStructureRule() *HeadingStructureRule {
	return &HeadingStructureRule{
		BaseRule: lint.NewBaseRule(
			"DX002",
			"heading-structure",
			"Documents should have exactly one H1 and no skipped heading levels",
			[]string{"headings"},
		),
	}
}

// Apply walks the document line by line, skipping fenced code.
//
// Skip detection compares against the most recent heading only, not a
// running maximum, so a document that legitimately returns to a shallower
// level and then jumps is not flagged.
func (r *HeadingStructureRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	prevLevel := 0
	h1Count := 0
	totalHeadings := 0

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}
		if ctx.Doc.InFence(n) || ctx.Doc.IsFence(n) {
			continue
		}

		m := headingRe.FindStringSubmatch(ctx.Doc.Line(n))
		if m == nil {
			continue
		}

		level := len(m[1])
		totalHeadings++

		if level == 1 {
			h1Count++
			// Every H1 past the first triggers independently.
			if h1Count > 1 {
				issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
					"Multiple H1 headings found").
					WithSeverity(config.SeverityError).
					WithSuggestion("Use H2 or lower for subsequent headings").
					Build())
			}
		}

		if prevLevel > 0 && level > prevLevel+1 {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				fmt.Sprintf("Skipped heading level: H%d → H%d", prevLevel, level)).
				WithSeverity(config.SeverityWarning).
				WithSuggestion(fmt.Sprintf("Use H%d instead", prevLevel+1)).
				Build())
		}

		prevLevel = level
	}

	if totalHeadings == 0 {
		issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, 1,
			"No headings found").
			WithSeverity(config.SeverityWarning).
			Build())
	}

	return issues, nil
}
