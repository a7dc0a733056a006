package lint

import (
	"context"
	"fmt"
	"slices"

	"github.com/docsmith/mdxcheck/pkg/config"
	"github.com/docsmith/mdxcheck/pkg/doc"
)

// FileResult contains the results of checking a single file.
type FileResult struct {
	// Doc is the scanned document.
	Doc *doc.Document

	// Issues contains all problems found, sorted by line ascending.
	// The sort is stable: issues on the same line keep emission order.
	Issues []Issue

	// RuleErrors contains internal errors from rule execution, keyed by
	// rule ID. A failing rule never prevents the others from running.
	RuleErrors map[string]error
}

// HasIssues returns true if any issues were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Issues) > 0
}

// CountBySeverity returns the number of issues with the given severity.
func (fr *FileResult) CountBySeverity(sev config.Severity) int {
	count := 0
	for _, issue := range fr.Issues {
		if issue.Severity == sev {
			count++
		}
	}
	return count
}

// Engine coordinates rule execution for checking documents.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine backed by the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// CheckFile scans and checks a single file's content.
//
// Every enabled rule runs against the same document, independently. A rule
// that returns an error or panics is recorded in RuleErrors and the
// remaining rules still run.
func (e *Engine) CheckFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	document := doc.New(path, content)

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Doc:        document,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("check cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, document, cfg)
		ruleCtx.Registry = e.Registry

		issues, err := applyRule(rr.Rule, ruleCtx)
		if err != nil {
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range issues {
			if rr.Severity != "" {
				issues[i].Severity = rr.Severity
			}
			if issues[i].Severity == "" {
				issues[i].Severity = config.SeverityWarning
			}
			if issues[i].FilePath == "" {
				issues[i].FilePath = path
			}
			if issues[i].RuleName == "" {
				issues[i].RuleName = rr.Rule.Name()
			}
		}

		result.Issues = append(result.Issues, issues...)
	}

	// Line-ascending, stable: ties preserve checker-emission order.
	slices.SortStableFunc(result.Issues, func(a, b Issue) int {
		return a.Line - b.Line
	})

	return result, nil
}

// applyRule invokes a rule, converting a panic on malformed input into an
// error so one rule's anomaly cannot abort the batch.
func applyRule(rule Rule, ctx *RuleContext) (issues []Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), r)
		}
	}()

	return rule.Apply(ctx)
}
