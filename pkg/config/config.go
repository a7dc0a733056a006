// Package config defines core configuration types for mdxcheck.
// These types are pure data structures with no dependency on the loader.
package config

// Severity represents the severity level of a check issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleConfig holds per-rule configuration overrides.
type RuleConfig struct {
	Enabled  *bool   `yaml:"enabled"`
	Severity *string `yaml:"severity"`
}

// OutputFormat specifies the output format for check results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// Config is the resolved configuration for a run.
type Config struct {
	// ContentRoot is the directory containing the documentation sources.
	// Internal links resolve against this directory.
	ContentRoot string `yaml:"content_root"`

	// Extensions is the set of file extensions (with leading dot) treated
	// as documentation sources. Defaults to [".mdx"].
	Extensions []string `yaml:"extensions"`

	// Ignore contains doublestar glob patterns for paths to skip.
	Ignore []string `yaml:"ignore"`

	// BaseBranch is the comparison baseline for changed-file discovery.
	BaseBranch string `yaml:"base_branch"`

	// Rules maps rule IDs to per-rule overrides.
	Rules map[string]RuleConfig `yaml:"rules"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		ContentRoot: ".",
		Extensions:  []string{".mdx"},
		BaseBranch:  "main",
		Rules:       map[string]RuleConfig{},
	}
}

// EffectiveExtensions returns the extensions to use, defaulting if empty.
func (c *Config) EffectiveExtensions() []string {
	if c == nil || len(c.Extensions) == 0 {
		return []string{".mdx"}
	}
	return c.Extensions
}
