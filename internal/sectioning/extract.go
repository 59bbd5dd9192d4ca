package sectioning

import (
	"log"
	"strings"

	"github.com/jonathan/resume-reviser/internal/types"
)

// Marker convention for machine-written section boundaries. Documents
// assembled by this package carry these lines so that repeated
// extract/assemble cycles remain stable.
const (
	markerBeginPrefix = "% SECTION: "
	markerEnd         = "% END SECTION"

	bodyBegin = `\begin{document}`
	bodyEnd   = `\end{document}`
)

// Extract splits raw document text into preamble, sections, and postamble.
// It is a total function: malformed input degrades to coarser granularity
// (ultimately a single OTHER section) rather than erroring.
//
// Extraction strategies, in priority order:
//  1. explicit machine-written markers,
//  2. header-pattern heuristics,
//  3. whole body as one OTHER section.
func Extract(text string) *types.ParsedDocument {
	bodyStart := strings.Index(text, bodyBegin)
	if bodyStart < 0 {
		// No document environment. Markers may still be present if this
		// text came out of Assemble; otherwise the whole input becomes
		// one OTHER section so downstream processing always has
		// something.
		if sections, pre, post, ok := extractMarked(text); ok {
			return &types.ParsedDocument{Preamble: pre, Sections: sections, Postamble: post}
		}
		return &types.ParsedDocument{
			Sections: []types.Section{{Kind: types.KindOther, Content: text, OrderIndex: 0}},
		}
	}

	preambleEnd := bodyStart + len(bodyBegin)
	preamble := text[:preambleEnd]

	bodyLimit := strings.LastIndex(text, bodyEnd)
	var body, postamble string
	if bodyLimit > preambleEnd {
		body = text[preambleEnd:bodyLimit]
		postamble = text[bodyLimit:]
	} else {
		body = text[preambleEnd:]
	}

	if sections, pre, post, ok := extractMarked(body); ok {
		return &types.ParsedDocument{
			Preamble:  preamble + pre,
			Sections:  sections,
			Postamble: post + postamble,
		}
	}

	if sections := extractHeuristic(body); len(sections) > 0 {
		return &types.ParsedDocument{
			Preamble:  preamble,
			Sections:  sections,
			Postamble: postamble,
		}
	}

	log.Printf("sectioning: no markers or headers found, falling back to single OTHER section")
	return &types.ParsedDocument{
		Preamble:  preamble,
		Sections:  []types.Section{{Kind: types.KindOther, Content: body, OrderIndex: 0}},
		Postamble: postamble,
	}
}

// markerBlock is one raw delimited block found in the body.
type markerBlock struct {
	tag        string
	content    string
	start, end int // span of the whole block, marker lines included
}

// extractMarked scans the body for explicit section markers. It returns
// ok=false when no well-formed marker block exists. Blocks with an
// unrecognized or repeated kind are absorbed into the surrounding context
// rather than failing the parse.
func extractMarked(body string) (sections []types.Section, leading, trailing string, ok bool) {
	blocks := scanMarkerBlocks(body)
	if len(blocks) == 0 {
		return nil, "", "", false
	}

	seen := make(map[types.SectionKind]bool)
	order := 0
	var absorbed strings.Builder
	consumedTo := 0

	for _, block := range blocks {
		// Non-whitespace text between blocks belongs to the implicit
		// context; whitespace separators were inserted by assembly.
		between := body[consumedTo:block.start]
		consumedTo = block.end

		kind, valid := types.ParseKind(block.tag)
		if !valid || seen[kind] {
			log.Printf("sectioning: skipping marker block with tag %q", block.tag)
			absorbed.WriteString(between)
			absorbed.WriteString(block.content)
			continue
		}
		seen[kind] = true

		if trimmed := strings.TrimSpace(between); trimmed != "" {
			absorbed.WriteString(between)
		}

		sections = append(sections, types.Section{
			Kind:       kind,
			Content:    block.content,
			OrderIndex: order,
		})
		order++
	}

	if len(sections) == 0 {
		return nil, "", "", false
	}

	leading = absorbed.String()
	if rest := body[consumedTo:]; strings.TrimSpace(rest) != "" {
		trailing = rest
	}
	return sections, leading, trailing, true
}

// scanMarkerBlocks finds raw begin/end marker pairs in appearance order.
// An unterminated begin marker is ignored.
func scanMarkerBlocks(body string) []markerBlock {
	var blocks []markerBlock
	pos := 0

	for {
		begin := indexAtLineStart(body, markerBeginPrefix, pos)
		if begin < 0 {
			break
		}

		lineEnd := strings.IndexByte(body[begin:], '\n')
		if lineEnd < 0 {
			break
		}
		tag := strings.TrimSpace(body[begin+len(markerBeginPrefix) : begin+lineEnd])
		contentStart := begin + lineEnd + 1

		end := indexAtLineStart(body, markerEnd, contentStart)
		if end < 0 {
			break
		}

		// The newline immediately before the end marker was inserted by
		// assembly; cutting it keeps content byte-exact across cycles.
		content := body[contentStart:end]
		content = strings.TrimSuffix(content, "\n")

		blockEnd := end + len(markerEnd)
		if blockEnd < len(body) && body[blockEnd] == '\n' {
			blockEnd++
		}

		blocks = append(blocks, markerBlock{tag: tag, content: content, start: begin, end: blockEnd})
		pos = blockEnd
	}

	return blocks
}

// indexAtLineStart returns the offset of the first occurrence of prefix at
// the start of a line, at or after from.
func indexAtLineStart(s, prefix string, from int) int {
	for search := from; search <= len(s); {
		idx := strings.Index(s[search:], prefix)
		if idx < 0 {
			return -1
		}
		abs := search + idx
		if abs == 0 || s[abs-1] == '\n' {
			return abs
		}
		search = abs + len(prefix)
	}
	return -1
}

// extractHeuristic splits the body at recognized header commands. Content
// before the first header (typically the name/contact block) becomes an
// OTHER section at index 0. Each section runs from its header to the next
// header's start, so the header line itself is part of the section content.
func extractHeuristic(body string) []types.Section {
	headers := findHeaders(body)
	if len(headers) == 0 {
		return nil
	}

	var sections []types.Section
	order := 0

	// Whitespace-only lead stays attached to the first section so that
	// concatenating section contents reproduces the body byte-exactly.
	firstStart := 0
	if lead := body[:headers[0].start]; strings.TrimSpace(lead) != "" {
		sections = append(sections, types.Section{
			Kind:       types.KindOther,
			Content:    lead,
			OrderIndex: order,
		})
		order++
		firstStart = headers[0].start
	}

	for i, h := range headers {
		start := h.start
		if i == 0 {
			start = firstStart
		}
		end := len(body)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		sections = append(sections, types.Section{
			Kind:       h.kind,
			Content:    body[start:end],
			OrderIndex: order,
		})
		order++
	}

	return sections
}
