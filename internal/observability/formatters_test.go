package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-reviser/internal/types"
)

func TestPrintParsedDocument(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintParsedDocument(&types.ParsedDocument{
		Preamble: "\\documentclass{article}\n\\begin{document}",
		Sections: []types.Section{
			{Kind: types.KindExperience, Content: "\\section{Experience}\nDid work", OrderIndex: 0},
			{Kind: types.KindEducation, Content: "\\section{Education}\nBS CS", OrderIndex: 1, IsLocked: true},
		},
		Postamble: "\\end{document}",
	})

	out := buf.String()
	assert.Contains(t, out, "PARSED DOCUMENT")
	assert.Contains(t, out, "EXPERIENCE")
	assert.Contains(t, out, "[locked]")
	assert.Contains(t, out, "Sections:  2")
}

func TestPrintParsedDocument_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedDocument(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProposals(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProposals([]types.SectionProposal{
		{Kind: types.KindExperience, Before: "old", After: "newer", ChangeType: types.ChangeModified},
		{Kind: types.KindEducation, Before: "same", After: "same", ChangeType: types.ChangeUnchanged},
	})

	out := buf.String()
	assert.Contains(t, out, "REVISION PROPOSALS")
	assert.Contains(t, out, "1 of 2 sections modified")
}

func TestPrintProposals_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProposals(nil)
	assert.Empty(t, buf.String())
}

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintJob(&types.RevisionJob{
		ID:               uuid.New(),
		TargetDocumentID: uuid.New(),
		State:            types.JobFailed,
		Mode:             types.ModeBalanced,
		Error:            "boom",
	})

	out := buf.String()
	assert.Contains(t, out, "REVISION JOB")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "boom")
}
