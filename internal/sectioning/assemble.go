package sectioning

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-reviser/internal/types"
)

// Assemble reproduces document text from a parsed document, wrapping each
// section in the marker convention Extract recognizes. Sections are emitted
// in OrderIndex order regardless of slice order, so callers cannot corrupt
// document structure by supplying an unordered section list.
func Assemble(doc *types.ParsedDocument) string {
	return AssembleWithModifications(doc, nil, nil)
}

// AssembleWithModifications assembles the document with per-section
// replacements. Content precedence for each section is:
//
//	locked > replacement > original
//
// A kind present in locked always uses its original content, no matter what
// replacements says. This rule is the single safety-critical guarantee of
// the engine; every merge path goes through this function.
func AssembleWithModifications(doc *types.ParsedDocument, replacements map[types.SectionKind]string, locked map[types.SectionKind]bool) string {
	sections := make([]types.Section, len(doc.Sections))
	copy(sections, doc.Sections)
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].OrderIndex < sections[j].OrderIndex
	})

	var sb strings.Builder
	sb.WriteString(doc.Preamble)

	for _, section := range sections {
		content := section.Content
		if !locked[section.Kind] {
			if replacement, ok := replacements[section.Kind]; ok {
				content = replacement
			}
		}

		ensureLineBreak(&sb)
		sb.WriteString(markerBeginPrefix)
		sb.WriteString(string(section.Kind))
		sb.WriteByte('\n')
		sb.WriteString(content)
		sb.WriteByte('\n')
		sb.WriteString(markerEnd)
		sb.WriteByte('\n')
	}

	if doc.Postamble != "" {
		ensureLineBreak(&sb)
		sb.WriteString(doc.Postamble)
	}

	return sb.String()
}

// ensureLineBreak makes sure the next write starts on a fresh line, so
// marker lines and the postamble are never glued to preceding content.
func ensureLineBreak(sb *strings.Builder) {
	if s := sb.String(); s != "" && !strings.HasSuffix(s, "\n") {
		sb.WriteByte('\n')
	}
}
