package sectioning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-reviser/internal/types"
)

func testDoc() *types.ParsedDocument {
	return &types.ParsedDocument{
		Preamble: "\\documentclass{article}\n\\begin{document}",
		Sections: []types.Section{
			{Kind: types.KindExperience, Content: "\\section{Experience}\nDid work", OrderIndex: 0},
			{Kind: types.KindEducation, Content: "\\section{Education}\nBS CS", OrderIndex: 1},
		},
		Postamble: "\\end{document}",
	}
}

func TestAssembleWrapsSectionsInMarkers(t *testing.T) {
	out := Assemble(testDoc())

	assert.True(t, strings.HasPrefix(out, "\\documentclass{article}\n"))
	assert.Contains(t, out, "% SECTION: EXPERIENCE\n\\section{Experience}\nDid work\n% END SECTION\n")
	assert.NotContains(t, out, "% SECTION: SKILLS\n")
	assert.True(t, strings.HasSuffix(out, "\\end{document}"))

	// EXPERIENCE precedes EDUCATION per OrderIndex.
	assert.Less(t,
		strings.Index(out, "% SECTION: EXPERIENCE"),
		strings.Index(out, "% SECTION: EDUCATION"))
}

func TestAssembleOrdersByOrderIndexNotSliceOrder(t *testing.T) {
	doc := testDoc()
	doc.Sections[0], doc.Sections[1] = doc.Sections[1], doc.Sections[0]

	out := Assemble(doc)
	assert.Less(t,
		strings.Index(out, "% SECTION: EXPERIENCE"),
		strings.Index(out, "% SECTION: EDUCATION"))
}

func TestAssemblePrecedence(t *testing.T) {
	replacement := "\\section{Experience}\nShipped systems"

	tests := []struct {
		name         string
		replacements map[types.SectionKind]string
		locked       map[types.SectionKind]bool
		want         string
		wantAbsent   string
	}{
		{
			name:         "replacement applies to unlocked section",
			replacements: map[types.SectionKind]string{types.KindExperience: replacement},
			want:         "Shipped systems",
			wantAbsent:   "Did work",
		},
		{
			name:         "lock beats replacement",
			replacements: map[types.SectionKind]string{types.KindExperience: replacement},
			locked:       map[types.SectionKind]bool{types.KindExperience: true},
			want:         "Did work",
			wantAbsent:   "Shipped systems",
		},
		{
			name:   "lock without replacement keeps original",
			locked: map[types.SectionKind]bool{types.KindExperience: true},
			want:   "Did work",
		},
		{
			name:         "replacement for absent kind is ignored",
			replacements: map[types.SectionKind]string{types.KindSkills: "\\section{Skills}\nGo"},
			want:         "Did work",
			wantAbsent:   "Go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := AssembleWithModifications(testDoc(), tt.replacements, tt.locked)
			assert.Contains(t, out, tt.want)
			if tt.wantAbsent != "" {
				assert.NotContains(t, out, tt.wantAbsent)
			}
		})
	}
}

func TestAssembleNeverMutatesInput(t *testing.T) {
	doc := testDoc()
	original := doc.Sections[0].Content

	AssembleWithModifications(doc,
		map[types.SectionKind]string{types.KindExperience: "replaced"}, nil)

	assert.Equal(t, original, doc.Sections[0].Content)
	assert.Equal(t, 0, doc.Sections[0].OrderIndex)
}

func TestAssembleEmptyDocument(t *testing.T) {
	doc := &types.ParsedDocument{
		Preamble:  "\\begin{document}",
		Postamble: "\\end{document}",
	}
	out := Assemble(doc)
	require.Equal(t, "\\begin{document}\n\\end{document}", out)
}
