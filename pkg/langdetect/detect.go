// Package langdetect answers whether a code-fence language token names a
// known language. It uses go-enry's alias table, widened with a few
// documentation-specific spellings enry does not register.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// extraAliases covers tokens common in docs code fences that are not enry
// language aliases.
//
//nolint:gochecknoglobals // Immutable lookup table constructed once
var extraAliases = map[string]struct{}{
	"text":       {},
	"plaintext":  {},
	"sh":         {},
	"shell":      {},
	"bash":       {},
	"zsh":        {},
	"console":    {},
	"env":        {},
	"dotenv":     {},
	"mdx":        {},
	"jsx":        {},
	"tsx":        {},
	"curl":       {},
	"http":       {},
	"dockerfile": {},
	"toml":       {},
	"yml":        {},
}

// Known reports whether token is a recognized language identifier.
// Matching is case-insensitive. An empty token is not known.
func Known(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return false
	}

	if _, ok := extraAliases[token]; ok {
		return true
	}

	_, ok := enry.GetLanguageByAlias(token)
	return ok
}
