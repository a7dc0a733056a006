package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

//nolint:gochecknoglobals // Immutable patterns compiled once at process start
// mdLinkRe includes an optional leading bang so image embeds can be told
// apart from links and skipped.
var (
	mdLinkRe   = regexp.MustCompile(`!?\[[^\]]*\]\(([^)\s]+)\)`)
	hrefLinkRe = regexp.MustCompile(`href="([^"]+)"`)
	schemeRe   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// imageExtensions are link targets that are assets, not documents.
//
//nolint:gochecknoglobals // Immutable lookup table
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
	".webp": {},
	".ico":  {},
}

// InternalLinkRule validates that root-relative links resolve to existing
// documents under the content root.
//
// This is necessarily a heuristic: links valid only through a dynamic
// routing layer will false-positive, which is acceptable at warning
// severity.
type InternalLinkRule struct {
	lint.BaseRule
}

// NewInternalLinkRule creates a new internal link rule.
func NewInternalLinkRule() *InternalLinkRule {
	return &InternalLinkRule{
		BaseRule: lint.NewBaseRule(
			"DX005",
			"internal-links",
			"Internal links should resolve to existing documents",
			[]string{"links"},
		),
	}
}

// Apply scans each non-code line with the markdown-style and
// attribute-style patterns independently.
func (r *InternalLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	var issues []lint.Issue

	for n := 1; n <= ctx.Doc.LineCount(); n++ {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}
		if ctx.Doc.InFence(n) || ctx.Doc.IsFence(n) {
			continue
		}

		line := ctx.Doc.Line(n)

		var targets []string
		for _, m := range mdLinkRe.FindAllStringSubmatch(line, -1) {
			if strings.HasPrefix(m[0], "!") {
				// Image embeds are assets, not document links.
				continue
			}
			targets = append(targets, m[1])
		}
		for _, m := range hrefLinkRe.FindAllStringSubmatch(line, -1) {
			targets = append(targets, m[1])
		}

		for _, target := range targets {
			if skipTarget(target) {
				continue
			}
			if !r.resolves(ctx.ContentRoot(), target) {
				issues = append(issues, lint.NewIssue(r.ID(), ctx.Doc.Path, n,
					fmt.Sprintf("Possibly broken internal link: %s", target)).
					WithSeverity(config.SeverityWarning).
					Build())
			}
		}
	}

	return issues, nil
}

// skipTarget reports whether a link target is out of scope: external,
// a pure anchor, an asset, or not root-relative.
func skipTarget(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return true
	}
	if schemeRe.MatchString(target) {
		return true
	}
	if !strings.HasPrefix(target, "/") {
		return true
	}
	if _, ok := imageExtensions[strings.ToLower(filepath.Ext(target))]; ok {
		return true
	}
	return false
}

// resolves probes the three candidate resolutions against the content root.
func (r *InternalLinkRule) resolves(root, target string) bool {
	// Fragments address a section of the target document.
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	rel := strings.TrimPrefix(target, "/")
	if rel == "" {
		return true
	}

	candidates := []string{
		filepath.Join(root, rel+".mdx"),
		filepath.Join(root, rel, "index.mdx"),
		filepath.Join(root, rel),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return true
		}
	}
	return false
}
