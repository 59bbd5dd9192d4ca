// Package validation decides whether a generated section candidate is safe
// to substitute for the original section content.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-reviser/internal/sectioning"
)

// escapeRetentionRatio is the minimum fraction of the original's
// escape-sequence count a candidate must retain. Guards against the
// generation step silently deleting structural markup.
const escapeRetentionRatio = 0.7

// refusalPhrases are natural-language fragments that indicate the generation
// backend declined the task instead of producing section content.
var refusalPhrases = []string{
	"i cannot",
	"i can't",
	"i am unable",
}

// escapeTokenPattern matches backslash-prefixed tokens: commands like
// \section as well as escaped single characters like \% and \&.
var escapeTokenPattern = regexp.MustCompile(`\\[a-zA-Z]+|\\[^a-zA-Z\s]`)

// Result holds the outcome of validating one section candidate.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// reject builds a failing Result with the given reason.
func reject(format string, args ...any) Result {
	return Result{OK: false, Reason: fmt.Sprintf(format, args...)}
}

// ValidateSection checks a generated candidate against the original section
// content. All checks must pass for acceptance; any failure means the caller
// discards the candidate and keeps the original.
func ValidateSection(original, candidate string) Result {
	if !balanced(candidate, '{', '}') {
		return reject("unbalanced braces in candidate")
	}
	if !balanced(candidate, '[', ']') {
		return reject("unbalanced brackets in candidate")
	}
	if strings.Contains(candidate, "```") {
		return reject("candidate contains leftover code fence")
	}
	if phrase := findRefusal(candidate); phrase != "" {
		return reject("candidate contains refusal phrase %q", phrase)
	}

	origEscapes := countEscapeTokens(original)
	candEscapes := countEscapeTokens(candidate)
	if origEscapes > 0 && float64(candEscapes) < escapeRetentionRatio*float64(origEscapes) {
		return reject("candidate retains %d of %d escape sequences, below %.0f%% threshold",
			candEscapes, origEscapes, escapeRetentionRatio*100)
	}

	if sectioning.ContainsHeader(original) && !sectioning.ContainsHeader(candidate) {
		return reject("candidate dropped the section header command")
	}

	return Result{OK: true}
}

// balanced reports whether the running open/close count over text never goes
// negative and ends at zero.
func balanced(text string, open, close byte) bool {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// findRefusal returns the first refusal phrase present in text, or "".
func findRefusal(text string) string {
	lower := strings.ToLower(text)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	return ""
}

// countEscapeTokens counts backslash-prefixed tokens in text.
func countEscapeTokens(text string) int {
	return len(escapeTokenPattern.FindAllString(text, -1))
}
