// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-reviser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLines is the number of content lines shown per section
	previewLines = 3
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedDocument outputs a human-readable summary of a segmented
// document: section kinds, sizes, order, and lock state.
func (p *Printer) PrintParsedDocument(doc *types.ParsedDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Preamble:  %d bytes\n", len(doc.Preamble)))
	sb.WriteString(fmt.Sprintf("Postamble: %d bytes\n", len(doc.Postamble)))
	sb.WriteString(fmt.Sprintf("Sections:  %d\n", len(doc.Sections)))

	for _, section := range doc.Sections {
		lock := ""
		if section.IsLocked {
			lock = "  [locked]"
		}
		sb.WriteString(fmt.Sprintf("\n#%d  %s  (%d bytes)%s\n",
			section.OrderIndex, section.Kind, len(section.Content), lock))
		for i, line := range strings.Split(strings.TrimSpace(section.Content), "\n") {
			if i >= previewLines {
				sb.WriteString("    ...\n")
				break
			}
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}
	}

	p.printBox("PARSED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProposals outputs a per-section summary of a revision job's result.
func (p *Printer) PrintProposals(proposals []types.SectionProposal) {
	if len(proposals) == 0 {
		return
	}

	modified := 0
	var sb strings.Builder
	for _, proposal := range proposals {
		marker := " "
		if proposal.ChangeType == types.ChangeModified {
			marker = "*"
			modified++
		}
		sb.WriteString(fmt.Sprintf("%s %-13s %s  (%d -> %d bytes)\n",
			marker, proposal.Kind, proposal.ChangeType, len(proposal.Before), len(proposal.After)))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d sections modified", modified, len(proposals)))

	p.printBox("REVISION PROPOSALS", sb.String())
}

// PrintJob outputs the state of a revision job.
func (p *Printer) PrintJob(job *types.RevisionJob) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", job.ID))
	sb.WriteString(fmt.Sprintf("Document: %s\n", job.TargetDocumentID))
	sb.WriteString(fmt.Sprintf("Mode:     %s\n", job.Mode))
	sb.WriteString(fmt.Sprintf("State:    %s", job.State))
	if job.Error != "" {
		sb.WriteString(fmt.Sprintf("\nError:    %s", job.Error))
	}

	p.printBox("REVISION JOB", sb.String())
}
