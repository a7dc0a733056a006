package lint

import (
	"context"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/doc"
)

// RuleContext provides all context needed by a rule to check one document.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. RuleContext is a short-lived
// parameter object created per-rule-invocation, which keeps the Rule
// interface to a single Apply method while still providing cancellation via
// the Cancelled helper.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document under check.
	Doc *doc.Document

	// Config is the resolved run configuration.
	Config *config.Config

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given document and config.
func NewRuleContext(ctx context.Context, d *doc.Document, cfg *config.Config) *RuleContext {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &RuleContext{
		Ctx:    ctx,
		Doc:    d,
		Config: cfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// ContentRoot returns the directory internal links resolve against.
func (rc *RuleContext) ContentRoot() string {
	if rc.Config == nil || rc.Config.ContentRoot == "" {
		return "."
	}
	return rc.Config.ContentRoot
}
