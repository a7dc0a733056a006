package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/langdetect"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// fenceOpenRe captures the info string of a fence line: the language token
// immediately after the backticks, then anything that follows.
//
//nolint:gochecknoglobals // Immutable patterns compiled once at process start
var (
	fenceOpenRe    = regexp.MustCompile("^\\s*```(\\S*)[ \t]*(.*)$")
	codeGroupOpen  = regexp.MustCompile(`<CodeGroup\b`)
	codeGroupClose = regexp.MustCompile(`</CodeGroup>`)
)

// CodeFenceRule validates language annotation on fenced code blocks and
// label annotations inside grouped constructs.
type CodeFenceRule struct {
	lint.BaseRule
}

// NewCodeFenceRule creates a new code fence rule.
func NewCodeFenceRule() *CodeFenceRule {
	return &CodeFenceRule{
		BaseRule: lint.NewBaseRule(
			"DX003",
			"code-fences",
			"Fenced code blocks need a language specifier, and a label inside code groups",
			[]string{"code"},
		),
	}
}

// Apply walks the document tracking fence state and grouped mode.
//
// Grouped mode is toggled by <CodeGroup> markers and is not nestable. The
// missing-language error and the missing-label warning evaluate
// independently; both may fire on the same line.
func (r *CodeFenceRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	inFence := false
	inGroup := false

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		line := ctx.Doc.Line(n)

		if ctx.Doc.IsFence(n) {
			opening := !inFence
			inFence = !inFence
			if !opening {
				continue
			}

			m := fenceOpenRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			lang, label := m[1], strings.TrimSpace(m[2])

			if lang == "" {
				issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
					"Code block missing language specifier").
					WithSeverity(config.SeverityError).
					WithSuggestion("Annotate the fence, e.g. ```bash").
					Build())
			}

			if inGroup && label == "" {
				issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
					"Code block in grouped construct should have a label").
					WithSeverity(config.SeverityWarning).
					WithSuggestion("Add a tab label, e.g. ```bash install.sh").
					Build())
			}
			continue
		}

		if inFence {
			continue
		}

		if codeGroupOpen.MatchString(line) {
			inGroup = true
		}
		if codeGroupClose.MatchString(line) {
			inGroup = false
		}
	}

	return issues, nil
}

// KnownLanguageRule flags fence language tokens that are not recognized
// language identifiers. Informational only; unknown tokens render without
// highlighting but are not defects.
type KnownLanguageRule struct {
	lint.BaseRule
}

// NewKnownLanguageRule creates a new known language rule.
func NewKnownLanguageRule() *KnownLanguageRule {
	return &KnownLanguageRule{
		BaseRule: lint.NewBaseRule(
			"DX006",
			"known-language",
			"Code fence language tokens should name a known language",
			[]string{"code"},
		),
	}
}

// Apply checks each fence-opening language token against the alias table.
func (r *KnownLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	inFence := false
	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if !ctx.Doc.IsFence(n) {
			continue
		}
		opening := !inFence
		inFence = !inFence
		if !opening {
			continue
		}

		m := fenceOpenRe.FindStringSubmatch(ctx.Doc.Line(n))
		if m == nil || m[1] == "" {
			// Missing languages are DX003's finding.
			continue
		}

		if !langdetect.Known(m[1]) {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				fmt.Sprintf("Unknown code fence language %q", m[1])).
				WithSeverity(config.SeverityInfo).
				Build())
		}
	}

	return issues, nil
}
