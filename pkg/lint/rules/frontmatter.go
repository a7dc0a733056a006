package rules

import (
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/doc"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// frontmatterDelimiter opens and closes the metadata block.
const frontmatterDelimiter = "---"

// Required keys are pattern-matched against the raw block text, not parsed:
// a line starting with the key followed by non-whitespace content.
//
//nolint:gochecknoglobals // Immutable patterns compiled once at process start
var (
	titleRe       = regexp.MustCompile(`(?m)^title:[ \t]*\S`)
	descriptionRe = regexp.MustCompile(`(?m)^description:[ \t]*\S`)
)

// FrontmatterRule validates the presence of the metadata block and its
// required keys.
type FrontmatterRule struct {
	lint.BaseRule
}

// NewFrontmatterRule creates a new frontmatter rule.
func NewFrontmatterRule() *FrontmatterRule {
	return &FrontmatterRule{
		BaseRule: lint.NewBaseRule(
			"DX001",
			"require-frontmatter",
			"Documents must open with a frontmatter block containing title and description",
			[]string{"frontmatter"},
		),
	}
}

// Apply checks for the frontmatter block and its required keys.
//
// A missing block is a single error at line 1 and short-circuits the key
// checks. Missing keys are independent errors, all attributed to line 1
// since the omitted key has no position of its own.
func (r *FrontmatterRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	block, ok := frontmatterBlock(ctx.Doc)
	if !ok {
		issue := lint.NewIssue(r.ID(), ctx.Doc.Path, 1, "Missing frontmatter").
			WithSeverity(config.SeverityError).
			WithSuggestion("Start the file with a --- delimited metadata block").
			Build()
		return []lint.Issue{issue}, nil
	}

	var issues []lint.Issue

	if !titleRe.MatchString(block) {
		issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, 1,
			"Frontmatter is missing required key: title").
			WithSeverity(config.SeverityError).
			Build())
	}

	if !descriptionRe.MatchString(block) {
		issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, 1,
			"Frontmatter is missing required key: description").
			WithSeverity(config.SeverityError).
			Build())
	}

	return issues, nil
}

// frontmatterBlock extracts the raw text between the opening delimiter at
// the very start of the document and its terminator. The delimiters are not
// included. Returns false when the document does not open with a block.
func frontmatterBlock(d *doc.Document) (string, bool) {
	if !strings.HasPrefix(d.Content, frontmatterDelimiter+"\n") &&
		!strings.HasPrefix(d.Content, frontmatterDelimiter+"\r\n") {
		return "", false
	}

	var block strings.Builder
	for n := 2; n <= d.LineCount(); n++ {
		line := d.Line(n)
		if strings.TrimSpace(line) == frontmatterDelimiter {
			return block.String(), true
		}
		block.WriteString(line)
		block.WriteString("\n")
	}

	// No terminator: the block never closes, so there is no block.
	return "", false
}

// FrontmatterSyntaxRule validates that an existing frontmatter block parses
// as structured metadata. The core required-key checks in FrontmatterRule
// stay pattern-based; this rule only catches blocks that would break
// downstream tooling.
type FrontmatterSyntaxRule struct {
	lint.BaseRule
}

// NewFrontmatterSyntaxRule creates a new frontmatter syntax rule.
func NewFrontmatterSyntaxRule() *FrontmatterSyntaxRule {
	return &FrontmatterSyntaxRule{
		BaseRule: lint.NewBaseRule(
			"DX007",
			"frontmatter-valid",
			"Frontmatter blocks must parse as valid metadata",
			[]string{"frontmatter"},
		),
	}
}

// Apply parses the frontmatter block when one exists.
func (r *FrontmatterSyntaxRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if _, ok := frontmatterBlock(ctx.Doc); !ok {
		// Absence is DX001's finding, not ours.
		return nil, nil
	}

	var meta map[string]any
	if _, err := frontmatter.Parse(strings.NewReader(ctx.Doc.Content), &meta); err != nil {
		issue := lint.NewIssue(r.ID(), ctx.Doc.Path, 1,
			"Frontmatter is not valid YAML: "+err.Error()).
			WithSeverity(config.SeverityWarning).
			Build()
		return []lint.Issue{issue}, nil
	}

	return nil, nil
}
