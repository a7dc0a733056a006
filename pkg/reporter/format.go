package reporter

import "fmt"

// Format identifies an output format.
type Format string

const (
	// FormatText is the human-readable default.
	FormatText Format = "text"

	// FormatJSON emits the full result as JSON.
	FormatJSON Format = "json"

	// FormatSARIF emits SARIF 2.1.0 for CI code-scanning upload.
	FormatSARIF Format = "sarif"
)

// IsValid returns true for a supported format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF:
		return true
	default:
		return false
	}
}

// ParseFormat validates a format string, defaulting empty to text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported format: %s", s)
	}
	return f, nil
}
