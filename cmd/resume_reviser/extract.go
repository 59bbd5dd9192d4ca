package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-reviser/internal/observability"
	"github.com/jonathan/resume-reviser/internal/sectioning"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Split a LaTeX resume into logical sections",
	Long:  "Parses a LaTeX resume into preamble, classified sections, and postamble, and prints the structure. With --out, writes the document back in the marker-delimited canonical form.",
	RunE:  runExtract,
}

var (
	extractDocumentFile string
	extractOutputFile   string
)

func init() {
	extractCmd.Flags().StringVarP(&extractDocumentFile, "document", "d", "", "Path to LaTeX resume file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to write the canonical marker-delimited document")

	if err := extractCmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(extractDocumentFile)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc := sectioning.Extract(string(content))

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintParsedDocument(doc)

	if extractOutputFile != "" {
		if err := os.WriteFile(extractOutputFile, []byte(sectioning.Assemble(doc)), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Canonical document written to %s\n", extractOutputFile)
	}

	return nil
}
