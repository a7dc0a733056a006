package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/mdxcheck/pkg/config"
)

func TestFrontmatterRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
		wantMsgs   []string
	}{
		{
			name:       "complete frontmatter",
			input:      "---\ntitle: Quickstart\ndescription: Get started fast\n---\n\n# Quickstart\n",
			wantIssues: 0,
		},
		{
			name:       "missing frontmatter entirely",
			input:      "# Quickstart\n\nNo metadata here.\n",
			wantIssues: 1,
			wantMsgs:   []string{"Missing frontmatter"},
		},
		{
			name:       "empty file",
			input:      "",
			wantIssues: 1,
			wantMsgs:   []string{"Missing frontmatter"},
		},
		{
			name:       "delimiter not at start of file",
			input:      "\n---\ntitle: Late\n---\n",
			wantIssues: 1,
			wantMsgs:   []string{"Missing frontmatter"},
		},
		{
			name:       "unterminated block",
			input:      "---\ntitle: Quickstart\n\n# Heading\n",
			wantIssues: 1,
			wantMsgs:   []string{"Missing frontmatter"},
		},
		{
			name:       "missing title only",
			input:      "---\ndescription: Something useful\n---\n",
			wantIssues: 1,
			wantMsgs:   []string{"missing required key: title"},
		},
		{
			name:       "missing description only",
			input:      "---\ntitle: Quickstart\n---\n",
			wantIssues: 1,
			wantMsgs:   []string{"missing required key: description"},
		},
		{
			name:       "both keys missing",
			input:      "---\nicon: rocket\n---\n",
			wantIssues: 2,
			wantMsgs: []string{
				"missing required key: title",
				"missing required key: description",
			},
		},
		{
			name:       "key present but empty",
			input:      "---\ntitle:\ndescription: ok\n---\n",
			wantIssues: 1,
			wantMsgs:   []string{"missing required key: title"},
		},
		{
			name:       "key must start the line",
			input:      "---\n  title: indented\ndescription: ok\n---\n",
			wantIssues: 1,
			wantMsgs:   []string{"missing required key: title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewFrontmatterRule()
			issues, err := applyTo(t, rule, tt.input)
			require.NoError(t, err)
			assert.Len(t, issues, tt.wantIssues)

			for i, msg := range tt.wantMsgs {
				if i < len(issues) {
					assert.Contains(t, issues[i].Message, msg)
				}
			}
			for _, issue := range issues {
				assert.Equal(t, 1, issue.Line, "frontmatter issues attribute to line 1")
				assert.Equal(t, config.SeverityError, issue.Severity)
				assert.Equal(t, "DX001", issue.RuleID)
			}
		})
	}
}

func TestFrontmatterRuleMissingBlockShortCircuits(t *testing.T) {
	// A missing block must not also report missing keys.
	rule := NewFrontmatterRule()
	issues, err := applyTo(t, rule, "Just prose, no metadata.\n")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "Missing frontmatter", issues[0].Message)
}

func TestFrontmatterSyntaxRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "valid yaml",
			input:      "---\ntitle: Quickstart\ndescription: ok\n---\n",
			wantIssues: 0,
		},
		{
			name:       "no block at all",
			input:      "# Heading only\n",
			wantIssues: 0,
		},
		{
			name:       "broken yaml",
			input:      "---\ntitle: [unclosed\n---\n",
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewFrontmatterSyntaxRule()
			issues, err := applyTo(t, rule, tt.input)
			require.NoError(t, err)
			assert.Len(t, issues, tt.wantIssues)

			for _, issue := range issues {
				assert.Equal(t, "DX007", issue.RuleID)
				assert.Equal(t, config.SeverityWarning, issue.Severity)
				assert.Equal(t, 1, issue.Line)
			}
		})
	}
}
