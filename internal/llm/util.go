// Package llm - util.go provides shared utilities for response processing.
package llm

import "strings"

// StripCodeFence removes a markdown code fence wrapping a response.
// Models often wrap LaTeX output in ```latex ... ``` blocks even when
// instructed not to; the inner text is returned unchanged.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	// Skip a language identifier on the fence line
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(trimmed[:idx])
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {\\") {
			trimmed = trimmed[idx+1:]
		}
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
