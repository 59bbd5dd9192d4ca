package ingestion

import (
	"regexp"
	"strings"
)

var spacesPattern = regexp.MustCompile(`\s+`)

// CleanText normalizes text content while preserving line structure:
// line endings become LF, intra-line whitespace collapses, and runs of
// blank lines shrink to at most one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := 0

	for _, line := range lines {
		line = cleanLine(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// cleanLine collapses whitespace within a line, keeping list-bullet
// indentation intact.
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := ""
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent = strings.Repeat(" ", len(line)-len(trimmed))
	}

	return indent + spacesPattern.ReplaceAllString(strings.TrimSpace(trimmed), " ")
}
