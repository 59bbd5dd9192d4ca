package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "normalizes CRLF",
			input:    "line one\r\nline two\r\n",
			expected: "line one\nline two",
		},
		{
			name:     "collapses intra-line whitespace",
			input:    "too    many     spaces",
			expected: "too many spaces",
		},
		{
			name:     "collapses blank line runs",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "keeps bullet indentation",
			input:    "Requirements:\n  - Go experience\n  - SQL",
			expected: "Requirements:\n  - Go experience\n  - SQL",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "\n\n   centered   \n\n",
			expected: "centered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "", cleanLine("   \t  "))
	assert.Equal(t, "plain text", cleanLine("  plain    text  "))
	assert.Equal(t, "  - bullet item", cleanLine("  - bullet   item"))
}
