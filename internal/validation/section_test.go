package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSectionAccepts(t *testing.T) {
	original := "\\section{Experience}\n\\begin{itemize}\n\\item Did work\n\\end{itemize}\n"
	candidate := "\\section{Experience}\n\\begin{itemize}\n\\item Shipped the work\n\\end{itemize}\n"

	result := ValidateSection(original, candidate)
	assert.True(t, result.OK)
	assert.Empty(t, result.Reason)
}

func TestValidateSectionRejects(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		candidate string
		reason    string
	}{
		{
			name:      "unclosed brace",
			original:  "\\section{Skills}",
			candidate: "\\section{Skills",
			reason:    "unbalanced braces",
		},
		{
			name:      "close before open brace",
			original:  "\\section{Skills}",
			candidate: "}\\section{Skills}{",
			reason:    "unbalanced braces",
		},
		{
			name:      "unbalanced brackets",
			original:  "\\section{Skills}",
			candidate: "\\section{Skills}\n\\item[Go",
			reason:    "unbalanced brackets",
		},
		{
			name:      "code fence left behind",
			original:  "\\section{Skills}",
			candidate: "```latex\n\\section{Skills}\n```",
			reason:    "code fence",
		},
		{
			name:      "refusal phrase",
			original:  "\\section{Skills}",
			candidate: "I cannot rewrite this \\section{Skills}",
			reason:    "refusal phrase",
		},
		{
			name:      "refusal phrase case-insensitive",
			original:  "\\section{Skills}",
			candidate: "I Am Unable to help \\section{Skills}",
			reason:    "refusal phrase",
		},
		{
			name:      "markup stripped below threshold",
			original:  "\\section{Skills} \\item \\item \\item \\item \\item \\item \\item \\item \\item",
			candidate: "\\section{Skills} plain text only",
			reason:    "escape sequences",
		},
		{
			name:      "header dropped",
			original:  "\\section{Skills}\nGo, SQL",
			candidate: "Go, SQL",
			reason:    "section header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSection(tt.original, tt.candidate)
			assert.False(t, result.OK)
			assert.Contains(t, result.Reason, tt.reason)
		})
	}
}

func TestValidateSectionNoEscapesInOriginal(t *testing.T) {
	// A plain-text original imposes no retention floor.
	result := ValidateSection("just plain text", "completely different plain text")
	assert.True(t, result.OK)
}

func TestCountEscapeTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"plain text", "no markup here", 0},
		{"commands", "\\section{X} \\item", 2},
		{"escaped specials", "50\\% of \\$1M", 2},
		{"mixed", "\\textbf{Go} \\& SQL at 30\\%", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countEscapeTokens(tt.text))
		})
	}
}

func TestBalanced(t *testing.T) {
	assert.True(t, balanced("", '{', '}'))
	assert.True(t, balanced("{a{b}c}", '{', '}'))
	assert.False(t, balanced("{a", '{', '}'))
	assert.False(t, balanced("}a{", '{', '}'))
	assert.True(t, balanced("[x][y]", '[', ']'))
}
