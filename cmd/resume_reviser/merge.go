package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-reviser/internal/revision"
	"github.com/jonathan/resume-reviser/internal/sectioning"
	"github.com/jonathan/resume-reviser/internal/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge accepted proposal sections into the original document",
	Long:  "Reads a proposal file produced by revise and recombines the original document with the accepted sections. Sections not listed in --accept keep their original content.",
	RunE:  runMerge,
}

var (
	mergeDocumentFile string
	mergeProposalPath string
	mergeAcceptKinds  []string
	mergeOutputFile   string
)

func init() {
	mergeCmd.Flags().StringVarP(&mergeDocumentFile, "document", "d", "", "Path to the original LaTeX resume file (required)")
	mergeCmd.Flags().StringVarP(&mergeProposalPath, "proposal", "p", "", "Path to the proposal JSON file (required)")
	mergeCmd.Flags().StringSliceVarP(&mergeAcceptKinds, "accept", "a", nil, "Section kinds to accept (e.g. EXPERIENCE,SKILLS); none keeps the original document")
	mergeCmd.Flags().StringVarP(&mergeOutputFile, "out", "o", "", "Path to write the merged document (required)")

	if err := mergeCmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}
	if err := mergeCmd.MarkFlagRequired("proposal"); err != nil {
		panic(fmt.Sprintf("failed to mark proposal flag as required: %v", err))
	}
	if err := mergeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(mergeDocumentFile)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	proposalBytes, err := os.ReadFile(mergeProposalPath)
	if err != nil {
		return fmt.Errorf("failed to read proposal file: %w", err)
	}

	var payload proposalFile
	if err := json.Unmarshal(proposalBytes, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal proposal JSON: %w", err)
	}

	accepted := make(map[types.SectionKind]bool, len(mergeAcceptKinds))
	for _, value := range mergeAcceptKinds {
		kind, ok := types.ParseKind(value)
		if !ok {
			return fmt.Errorf("unknown section kind %q (valid: %v)", value, types.AllKinds)
		}
		accepted[kind] = true
	}

	doc := sectioning.Extract(string(content))
	merged := revision.MergeProposals(doc, payload.Proposals, accepted)

	if err := os.WriteFile(mergeOutputFile, []byte(merged), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Merged document written to %s (%d of %d sections accepted)\n",
		mergeOutputFile, len(accepted), len(payload.Proposals))
	return nil
}
