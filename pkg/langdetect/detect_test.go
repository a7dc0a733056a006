package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"go", true},
		{"python", true},
		{"javascript", true},
		{"js", true},
		{"typescript", true},
		{"ruby", true},
		{"json", true},
		{"yaml", true},

		// Documentation spellings outside the enry alias table.
		{"text", true},
		{"bash", true},
		{"sh", true},
		{"mdx", true},
		{"jsx", true},
		{"tsx", true},
		{"curl", true},
		{"env", true},

		// Case-insensitive.
		{"Go", true},
		{"PYTHON", true},

		{"", false},
		{"   ", false},
		{"blorp", false},
		{"not-a-language", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Known(tt.token))
		})
	}
}
