package rules

import "github.com/docsmith/mdxcheck/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewFrontmatterRule())       // DX001
	registry.Register(NewHeadingStructureRule())  // DX002
	registry.Register(NewCodeFenceRule())         // DX003
	registry.Register(NewComponentRule())         // DX004
	registry.Register(NewInternalLinkRule())      // DX005
	registry.Register(NewKnownLanguageRule())     // DX006
	registry.Register(NewFrontmatterSyntaxRule()) // DX007
}

//nolint:gochecknoinits // Registration via init keeps rule wiring in one place
func init() {
	RegisterAll(lint.DefaultRegistry)
}
