package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/mdxcheck/pkg/config"
)

// stubRule emits a fixed set of issues, or fails, for engine tests.
type stubRule struct {
	BaseRule
	issues  []Issue
	err     error
	panicks bool
}

func newStubRule(id string, issues []Issue) *stubRule {
	return &stubRule{
		BaseRule: NewBaseRule(id, "stub-"+id, "stub rule", nil),
		issues:   issues,
	}
}

func (r *stubRule) Apply(_ *RuleContext) ([]Issue, error) {
	if r.panicks {
		panic("malformed input")
	}
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out, nil
}

func TestEngineCheckFileSortsByLineStable(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", []Issue{
		{Line: 5, Message: "first on five", Severity: config.SeverityError},
		{Line: 2, Message: "on two", Severity: config.SeverityWarning},
	}))
	registry.Register(newStubRule("T002", []Issue{
		{Line: 5, Message: "second on five", Severity: config.SeverityWarning},
	}))

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "a.mdx", []byte("x\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Issues, 3)
	assert.Equal(t, 2, result.Issues[0].Line)
	assert.Equal(t, 5, result.Issues[1].Line)
	assert.Equal(t, 5, result.Issues[2].Line)
	// Rules run in ID order, and the sort keeps emission order on ties.
	assert.Equal(t, "first on five", result.Issues[1].Message)
	assert.Equal(t, "second on five", result.Issues[2].Message)
}

func TestEngineCheckFileBackfillsIssueFields(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", []Issue{{Line: 1, Message: "bare"}}))

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "b.mdx", []byte("x\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "b.mdx", issue.FilePath)
	assert.Equal(t, "stub-T001", issue.RuleName)
	assert.Equal(t, config.SeverityWarning, issue.Severity, "empty severity defaults to warning")
}

func TestEngineCheckFileRuleErrorIsolation(t *testing.T) {
	failing := newStubRule("T001", nil)
	failing.err = errors.New("boom")

	registry := NewRegistry()
	registry.Register(failing)
	registry.Register(newStubRule("T002", []Issue{{Line: 1, Message: "still ran", Severity: config.SeverityInfo}}))

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "c.mdx", []byte("x\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "still ran", result.Issues[0].Message)
	require.Contains(t, result.RuleErrors, "T001")
	assert.ErrorContains(t, result.RuleErrors["T001"], "boom")
}

func TestEngineCheckFileRecoversPanic(t *testing.T) {
	panicking := newStubRule("T001", nil)
	panicking.panicks = true

	registry := NewRegistry()
	registry.Register(panicking)
	registry.Register(newStubRule("T002", []Issue{{Line: 1, Message: "survivor", Severity: config.SeverityInfo}}))

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "d.mdx", []byte("x\n"), config.NewConfig())
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	require.Contains(t, result.RuleErrors, "T001")
	assert.ErrorContains(t, result.RuleErrors["T001"], "panicked")
}

func TestEngineCheckFileSeverityOverride(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", []Issue{
		{Line: 1, Message: "was error", Severity: config.SeverityError},
		{Line: 2, Message: "was warning", Severity: config.SeverityWarning},
	}))

	sev := "info"
	cfg := config.NewConfig()
	cfg.Rules["T001"] = config.RuleConfig{Severity: &sev}

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "e.mdx", []byte("x\n"), cfg)
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)
	for _, issue := range result.Issues {
		assert.Equal(t, config.SeverityInfo, issue.Severity, "explicit config override applies to every issue")
	}
}

func TestEngineCheckFileDisabledRule(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", []Issue{{Line: 1, Message: "never", Severity: config.SeverityError}}))

	disabled := false
	cfg := config.NewConfig()
	cfg.Rules["T001"] = config.RuleConfig{Enabled: &disabled}

	engine := NewEngine(registry)
	result, err := engine.CheckFile(context.Background(), "f.mdx", []byte("x\n"), cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
}

func TestEngineCheckFileCancelledContext(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("T001", []Issue{{Line: 1, Message: "never", Severity: config.SeverityError}}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(registry)
	_, err := engine.CheckFile(ctx, "g.mdx", []byte("x\n"), config.NewConfig())
	assert.Error(t, err)
}

func TestFileResultCountBySeverity(t *testing.T) {
	fr := &FileResult{Issues: []Issue{
		{Severity: config.SeverityError},
		{Severity: config.SeverityError},
		{Severity: config.SeverityWarning},
	}}

	assert.True(t, fr.HasIssues())
	assert.Equal(t, 2, fr.CountBySeverity(config.SeverityError))
	assert.Equal(t, 1, fr.CountBySeverity(config.SeverityWarning))
	assert.Equal(t, 0, fr.CountBySeverity(config.SeverityInfo))
}
