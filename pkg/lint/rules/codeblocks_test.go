package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/mdxcheck/pkg/config"
)

func TestCodeFenceRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
		wantMsgs   []string
	}{
		{
			name:       "annotated fence",
			input:      "```go\nfunc main() {}\n```\n",
			wantIssues: 0,
		},
		{
			name:       "bare fence",
			input:      "```\nsome output\n```\n",
			wantIssues: 1,
			wantMsgs:   []string{"Code block missing language specifier"},
		},
		{
			name:       "closing fence never flagged",
			input:      "```bash\necho hi\n```\n\n```python\nprint()\n```\n",
			wantIssues: 0,
		},
		{
			name:       "two bare fences flag twice",
			input:      "```\na\n```\n\n```\nb\n```\n",
			wantIssues: 2,
		},
		{
			name:       "grouped fence with label",
			input:      "<CodeGroup>\n```bash install.sh\nnpm install\n```\n</CodeGroup>\n",
			wantIssues: 0,
		},
		{
			name:       "grouped fence without label",
			input:      "<CodeGroup>\n```bash\nnpm install\n```\n</CodeGroup>\n",
			wantIssues: 1,
			wantMsgs:   []string{"should have a label"},
		},
		{
			name:       "ungrouped fence never needs a label",
			input:      "```bash\nnpm install\n```\n",
			wantIssues: 0,
		},
		{
			name:       "bare grouped fence fires both checks",
			input:      "<CodeGroup>\n```\nnpm install\n```\n</CodeGroup>\n",
			wantIssues: 2,
			wantMsgs: []string{
				"Code block missing language specifier",
				"should have a label",
			},
		},
		{
			name:       "group closes before later fence",
			input:      "<CodeGroup>\n```bash one\na\n```\n</CodeGroup>\n\n```bash\nb\n```\n",
			wantIssues: 0,
		},
		{
			name:       "fence-looking content inside a block ignored",
			input:      "```md\n<CodeGroup>\n```\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewCodeFenceRule()
			issues, err := applyTo(t, rule, tt.input)
			require.NoError(t, err)
			assert.Len(t, issues, tt.wantIssues)

			for i, msg := range tt.wantMsgs {
				if i < len(issues) {
					assert.Contains(t, issues[i].Message, msg)
				}
			}
		})
	}
}

func TestCodeFenceRuleSeverities(t *testing.T) {
	rule := NewCodeFenceRule()

	issues, err := applyTo(t, rule, "<CodeGroup>\n```\nx\n```\n</CodeGroup>\n")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, config.SeverityError, issues[0].Severity)
	assert.Equal(t, config.SeverityWarning, issues[1].Severity)
	assert.Equal(t, 2, issues[0].Line)
	assert.Equal(t, 2, issues[1].Line)
}

func TestKnownLanguageRule(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantIssues int
	}{
		{
			name:       "known language",
			input:      "```go\nx\n```\n",
			wantIssues: 0,
		},
		{
			name:       "common alias",
			input:      "```sh\nx\n```\n",
			wantIssues: 0,
		},
		{
			name:       "unknown token",
			input:      "```blorp\nx\n```\n",
			wantIssues: 1,
		},
		{
			name:       "missing language is not this rule's finding",
			input:      "```\nx\n```\n",
			wantIssues: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := NewKnownLanguageRule()
			issues, err := applyTo(t, rule, tt.input)
			require.NoError(t, err)
			assert.Len(t, issues, tt.wantIssues)

			for _, issue := range issues {
				assert.Equal(t, "DX006", issue.RuleID)
				assert.Equal(t, config.SeverityInfo, issue.Severity)
			}
		})
	}
}
