// Package sectioning splits a LaTeX resume into named logical sections and
// reassembles them byte-faithfully when untouched.
package sectioning

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-reviser/internal/types"
)

// kindKeywords maps each section kind to the header titles (and common
// synonyms) that identify it. Matching is case-insensitive.
var kindKeywords = map[types.SectionKind][]string{
	types.KindEducation: {
		"education", "academic background", "academics", "studies",
	},
	types.KindExperience: {
		"experience", "employment", "work history", "career", "professional experience", "work experience",
	},
	types.KindProjects: {
		"projects", "personal projects", "selected projects", "portfolio",
	},
	types.KindSkills: {
		"skills", "technical skills", "technologies", "competencies", "tools",
	},
	types.KindAchievements: {
		"achievements", "awards", "honors", "accomplishments", "certifications",
	},
}

// headerPattern matches LaTeX sectioning commands that introduce a resume
// section, capturing the title text. Starred variants are accepted.
var headerPattern = regexp.MustCompile(`\\(?:section|subsection|cvsection|resumesection)\*?\s*{([^}]*)}`)

// headerMatch is one classified header occurrence within the body.
type headerMatch struct {
	kind  types.SectionKind
	start int // byte offset of the header command in the body
}

// classifyTitle maps a header title to a section kind by keyword lookup.
// Returns false when no keyword set matches.
func classifyTitle(title string) (types.SectionKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return "", false
	}
	for _, kind := range types.AllKinds {
		for _, keyword := range kindKeywords[kind] {
			if normalized == keyword || strings.Contains(normalized, keyword) {
				return kind, true
			}
		}
	}
	return "", false
}

// findHeaders locates and classifies all recognizable section headers in the
// body, in appearance order. A header whose kind was already seen is skipped
// so its text flows into the earlier section's span, preserving the
// one-section-per-kind invariant.
func findHeaders(body string) []headerMatch {
	var matches []headerMatch
	seen := make(map[types.SectionKind]bool)

	for _, loc := range headerPattern.FindAllStringSubmatchIndex(body, -1) {
		title := body[loc[2]:loc[3]]
		kind, ok := classifyTitle(title)
		if !ok || seen[kind] {
			continue
		}
		seen[kind] = true
		matches = append(matches, headerMatch{kind: kind, start: loc[0]})
	}

	return matches
}

// ContainsHeader reports whether text contains a recognizable section header
// command. Used by the content validator's header-preservation guard.
func ContainsHeader(text string) bool {
	return headerPattern.MatchString(text)
}
