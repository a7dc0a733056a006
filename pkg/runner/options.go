// Package runner provides file discovery and the sequential per-file check
// loop.
package runner

import "github.com/docsmith/mdxcheck/pkg/config"

// Options controls a check run.
type Options struct {
	// ContentRoot is the directory containing the documentation sources.
	// Discovery walks it and internal links resolve against it.
	ContentRoot string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) treated as documentation sources. Defaults via config.
	Extensions []string

	// IgnoreGlobs are doublestar patterns for paths to skip, matched
	// against slash-separated paths relative to ContentRoot.
	IgnoreGlobs []string

	// BaseBranch is the comparison baseline for changed-file discovery.
	BaseBranch string

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// effectiveRoot returns the content root, defaulting to ".".
func (o Options) effectiveRoot() string {
	if o.ContentRoot == "" {
		return "."
	}
	return o.ContentRoot
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	if o.Config != nil {
		return o.Config.EffectiveExtensions()
	}
	return []string{".mdx"}
}

// effectiveBase returns the comparison baseline, defaulting from config.
func (o Options) effectiveBase() string {
	if o.BaseBranch != "" {
		return o.BaseBranch
	}
	if o.Config != nil && o.Config.BaseBranch != "" {
		return o.Config.BaseBranch
	}
	return "main"
}
