package rules

import (
	"fmt"
	"regexp"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// The component catalogs ship as data rather than per-tag branches so adding
// a tag is a table edit, not new logic.
//
//nolint:gochecknoglobals // Immutable lookup tables constructed once at process start
var (
	// requiredAttrs maps opening tags to the attributes they must carry.
	requiredAttrs = map[string][]string{
		"Step":          {"title"},
		"Tab":           {"title"},
		"Accordion":     {"title"},
		"Card":          {"title"},
		"ParamField":    {"type"},
		"ResponseField": {"name", "type"},
	}

	// containerChild maps grouping tags to their expected child tag. The
	// nesting stack built from it is tracked but never validated; no
	// parent/child mismatch issue is ever emitted.
	containerChild = map[string]string{
		"Steps":          "Step",
		"Tabs":           "Tab",
		"AccordionGroup": "Accordion",
	}

	// calloutTypos maps pluralized callout names to the valid singular form.
	calloutTypos = map[string]string{
		"Notes":    "Note",
		"Tips":     "Tip",
		"Warnings": "Warning",
		"Infos":    "Info",
		"Checks":   "Check",
	}

	componentTagRe = regexp.MustCompile(
		`<(Steps|Step|Tabs|Tab|AccordionGroup|Accordion|CardGroup|Card|ParamField|ResponseField)\b([^>]*?)(/?)>`)
	containerCloseRe = regexp.MustCompile(`</(Steps|Tabs|AccordionGroup)>`)
	calloutTypoRe    = regexp.MustCompile(`<(Notes|Tips|Warnings|Infos|Checks)\b`)
	htmlCommentRe    = regexp.MustCompile(`<!--`)
	imgTagRe         = regexp.MustCompile(`<img\b([^>]*?)/?>`)
	mdImageRe        = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	frameOpenRe      = regexp.MustCompile(`<Frame\b`)
	attrRes          = map[string]*regexp.Regexp{
		"title": regexp.MustCompile(`\btitle\s*=`),
		"type":  regexp.MustCompile(`\btype\s*=`),
		"name":  regexp.MustCompile(`\bname\s*=`),
		"cols":  regexp.MustCompile(`\bcols\s*=`),
		"alt":   regexp.MustCompile(`\balt\s*=`),
	}
)

// frameLookback is how many preceding lines are scanned for a wrapping
// <Frame> around an image embed.
const frameLookback = 5

// ComponentRule validates the fixed catalog of documentation components:
// required attributes, known callout typos, comment syntax, and
// image-wrapping conventions.
//
// Line-local, bounded-lookback heuristics catch the overwhelming majority of
// real violations without a tree parser.
type ComponentRule struct {
	lint.BaseRule
}

// NewComponentRule creates a new component rule.
func NewComponentRule() *ComponentRule {
	return &ComponentRule{
		BaseRule: lint.NewBaseRule(
			"DX004",
			"components",
			"Component tags must carry their required attributes and follow layout conventions",
			[]string{"components"},
		),
	}
}

// Apply checks each non-code line against the component catalogs.
func (r *ComponentRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	// Nesting stack for grouping containers. Populated and popped for
	// structural awareness only.
	var stack []string

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}
		if ctx.Doc.InFence(n) || ctx.Doc.IsFence(n) {
			continue
		}

		line := ctx.Doc.Line(n)

		if htmlCommentRe.MatchString(line) {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				"Use MDX comment syntax {/* ... */} instead of HTML comments").
				WithSeverity(config.SeverityError).
				Build())
		}

		for _, m := range calloutTypoRe.FindAllStringSubmatch(line, -1) {
			typo := m[1]
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				fmt.Sprintf("<%s> is not a valid callout, use <%s>", typo, calloutTypos[typo])).
				WithSeverity(config.SeverityError).
				Build())
		}

		for _, m := range componentTagRe.FindAllStringSubmatch(line, -1) {
			tag, attrs, selfClosing := m[1], m[2], m[3] == "/"

			for _, attr := range requiredAttrs[tag] {
				if !attrRes[attr].MatchString(attrs) {
					issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
						fmt.Sprintf("<%s> is missing required attribute %q", tag, attr)).
						WithSeverity(config.SeverityWarning).
						Build())
				}
			}

			if tag == "CardGroup" && !attrRes["cols"].MatchString(attrs) {
				issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
					`<CardGroup> should declare a "cols" attribute`).
					WithSeverity(config.SeverityWarning).
					Build())
			}

			if _, isContainer := containerChild[tag]; isContainer && !selfClosing {
				stack = append(stack, tag)
			}
		}

		for range containerCloseRe.FindAllString(line, -1) {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}

		issues = append(issues, r.checkImages(ctx, n, line)...)
	}

	return issues, nil
}

// checkImages flags raw image embeds that are not wrapped in <Frame> and
// images without alt text. The two checks are independent.
func (r *ComponentRule) checkImages(ctx *lint.RuleContext, n int, line string) []lint.Issue {
	var issues []lint.Issue

	for _, m := range imgTagRe.FindAllStringSubmatch(line, -1) {
		if !r.wrappedInFrame(ctx, n) {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				"Image should be wrapped in <Frame>").
				WithSeverity(config.SeverityWarning).
				Build())
		}
		if !attrRes["alt"].MatchString(m[1]) {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				"Image is missing alt text").
				WithSeverity(config.SeverityWarning).
				Build())
		}
	}

	for _, m := range mdImageRe.FindAllStringSubmatch(line, -1) {
		if !r.wrappedInFrame(ctx, n) {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				"Image should be wrapped in <Frame>").
				WithSeverity(config.SeverityWarning).
				Build())
		}
		if m[1] == "" {
			issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
				"Image is missing alt text").
				WithSeverity(config.SeverityWarning).
				Build())
		}
	}

	return issues
}

// wrappedInFrame scans the current line and up to frameLookback preceding
// lines for an opening <Frame> tag.
func (r *ComponentRule) wrappedInFrame(ctx *lint.RuleContext, n int) bool {
	for ln := n; ln >= 1 && ln >= n-frameLookback; ln-- {
		if frameOpenRe.MatchString(ctx.Doc.Line(ln)) {
			return true
		}
	}
	return false
}
