// Package rules provides the built-in checks for mdxcheck.
//
// # Rules
//
//   - DX001: require-frontmatter - Frontmatter block with title and description
//   - DX002: heading-structure - Single H1, no skipped levels, headings present
//   - DX003: code-fences - Language specifier on fences, labels in code groups
//   - DX004: components - Required attributes, callout typos, comment syntax,
//     image wrapping
//   - DX005: internal-links - Root-relative links resolve to existing documents
//   - DX006: known-language - Fence language tokens name a known language
//   - DX007: frontmatter-valid - Existing frontmatter parses as metadata
//
// All rules are line-oriented: they work from the Document's line scanner
// and fenced-code mask, never from a syntax tree. Each rule is stateless
// across files.
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll, triggered
// by importing this package for side effects.
package rules
