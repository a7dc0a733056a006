package rules

import (
	"context"
	"testing"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/doc"
	"github.com/docsmith/mdxcheck/pkg/lint"
)

// applyTo runs a rule against raw document content with default config.
func applyTo(t *testing.T, rule lint.Rule, content string) ([]lint.Issue, error) {
	t.Helper()
	return applyWithConfig(t, rule, content, config.NewConfig())
}

// applyWithConfig runs a rule against raw content with an explicit config.
func applyWithConfig(t *testing.T, rule lint.Rule, content string, cfg *config.Config) ([]lint.Issue, error) {
	t.Helper()
	d := doc.New("test.mdx", []byte(content))
	ruleCtx := lint.NewRuleContext(context.Background(), d, cfg)
	return rule.Apply(ruleCtx)
}
