package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-reviser/internal/config"
	"github.com/jonathan/resume-reviser/internal/ingestion"
	"github.com/jonathan/resume-reviser/internal/llm"
	"github.com/jonathan/resume-reviser/internal/observability"
	"github.com/jonathan/resume-reviser/internal/revision"
	"github.com/jonathan/resume-reviser/internal/types"
)

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Run a revision job over a LaTeX resume",
	Long:  "Segments the resume, rewrites every unlocked section toward the target role, validates each candidate, and writes the revised document plus a proposal file for selective merging.",
}

var (
	reviseConfigFile   string
	reviseDocumentFile string
	reviseMode         string
	reviseTargetFile   string
	reviseTargetURL    string
	reviseInstructions string
	reviseAPIKey       string
	reviseModel        string
	reviseLockKinds    []string
	reviseOutputFile   string
	reviseProposalFile string
	reviseThrottleSec  int
	reviseUseBrowser   bool
	reviseVerbose      bool
)

func init() {
	reviseCmd.RunE = runRevise
	reviseCmd.Flags().StringVar(&reviseConfigFile, "config", "", "Path to JSON config file with flag defaults")
	reviseCmd.Flags().StringVarP(&reviseDocumentFile, "document", "d", "", "Path to LaTeX resume file (required)")
	reviseCmd.Flags().StringVarP(&reviseMode, "mode", "m", "balanced", "Rewrite mode: minimal, balanced, or aggressive")
	reviseCmd.Flags().StringVarP(&reviseTargetFile, "target", "t", "", "Path to target role description text file")
	reviseCmd.Flags().StringVar(&reviseTargetURL, "target-url", "", "URL of the target role posting")
	reviseCmd.Flags().StringVarP(&reviseInstructions, "instructions", "i", "", "Additional rewriting instructions")
	reviseCmd.Flags().StringVar(&reviseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	reviseCmd.Flags().StringVar(&reviseModel, "model", "", "Override the generation model")
	reviseCmd.Flags().StringSliceVarP(&reviseLockKinds, "lock", "l", nil, "Section kinds to lock (e.g. EDUCATION,SKILLS)")
	reviseCmd.Flags().StringVarP(&reviseOutputFile, "out", "o", "", "Path to write the revised document (required)")
	reviseCmd.Flags().StringVar(&reviseProposalFile, "proposal-out", "", "Path to write the proposal JSON for selective merging")
	reviseCmd.Flags().IntVar(&reviseThrottleSec, "throttle", 0, "Seconds to wait between generation calls")
	reviseCmd.Flags().BoolVar(&reviseUseBrowser, "use-browser", false, "Render the target URL in a headless browser if needed")
	reviseCmd.Flags().BoolVarP(&reviseVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := reviseCmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}
	if err := reviseCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(reviseCmd)
}

// proposalFile is the on-disk shape of a job's proposal output, read back by
// the merge command.
type proposalFile struct {
	DocumentID    uuid.UUID               `json:"document_id"`
	Mode          types.RewriteMode       `json:"mode"`
	Proposals     []types.SectionProposal `json:"proposals"`
	AssembledText string                  `json:"assembled_text"`
}

func runRevise(_ *cobra.Command, _ []string) error {
	if reviseConfigFile != "" {
		cfg, err := config.LoadConfig(reviseConfigFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		applyConfigDefaults(cfg)
	}

	mode, err := types.ParseMode(reviseMode)
	if err != nil {
		return err
	}

	lockKinds, err := parseLockKinds(reviseLockKinds)
	if err != nil {
		return err
	}

	apiKey := reviseAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	target, err := resolveTarget(ctx)
	if err != nil {
		return err
	}

	llmConfig := llm.DefaultConfig()
	if reviseModel != "" {
		llmConfig = llmConfig.WithModel(reviseModel)
	}
	gateway, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = gateway.Close() }()

	store := newLocalStore(lockKinds)
	source := &localSource{path: reviseDocumentFile}

	opts := []revision.Option{}
	if reviseThrottleSec > 0 {
		opts = append(opts, revision.WithThrottle(time.Duration(reviseThrottleSec)*time.Second))
	}
	if reviseVerbose {
		opts = append(opts, revision.WithProgress(func(event revision.ProgressEvent) {
			fmt.Printf("  section %-13s %s\n", event.Kind, event.Change)
		}))
	}

	orch := revision.NewOrchestrator(store, source, gateway, opts...)

	documentID := uuid.New()
	job := &types.RevisionJob{
		ID:               uuid.New(),
		TargetDocumentID: documentID,
		State:            types.JobQueued,
		Mode:             mode,
	}

	fmt.Printf("Revising %s (mode: %s)\n", reviseDocumentFile, mode)
	result, err := orch.RunJob(ctx, job, revision.JobRequest{
		DocumentID:        documentID,
		Mode:              mode,
		TargetDescription: target,
		Instructions:      reviseInstructions,
	})
	if err != nil {
		var noUnlocked *revision.ErrNoUnlockedSections
		if errors.As(err, &noUnlocked) {
			return fmt.Errorf("every section is locked; unlock at least one to revise")
		}
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProposals(result.Proposals)

	if err := os.WriteFile(reviseOutputFile, []byte(result.AssembledText), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Revised document written to %s\n", reviseOutputFile)

	if reviseProposalFile != "" {
		payload := proposalFile{
			DocumentID:    documentID,
			Mode:          mode,
			Proposals:     result.Proposals,
			AssembledText: result.AssembledText,
		}
		jsonBytes, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal proposal JSON: %w", err)
		}
		if err := os.WriteFile(reviseProposalFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write proposal file: %w", err)
		}
		fmt.Printf("Proposal written to %s\n", reviseProposalFile)
	}

	return nil
}

// applyConfigDefaults fills unset flags from the config file.
func applyConfigDefaults(cfg *config.Config) {
	if reviseDocumentFile == "" {
		reviseDocumentFile = cfg.Document
	}
	if reviseTargetFile == "" {
		reviseTargetFile = cfg.Target
	}
	if reviseTargetURL == "" {
		reviseTargetURL = cfg.TargetURL
	}
	if reviseAPIKey == "" {
		reviseAPIKey = cfg.APIKey
	}
	if reviseModel == "" {
		reviseModel = cfg.Model
	}
	if cfg.Mode != "" && !reviseCmd.Flags().Changed("mode") {
		reviseMode = cfg.Mode
	}
	if reviseThrottleSec == 0 {
		reviseThrottleSec = cfg.ThrottleSeconds
	}
	if cfg.UseBrowser {
		reviseUseBrowser = true
	}
	if cfg.Verbose {
		reviseVerbose = true
	}
}

// resolveTarget loads the target role description from the URL or file flag.
func resolveTarget(ctx context.Context) (string, error) {
	switch {
	case reviseTargetURL != "" && reviseTargetFile != "":
		return "", fmt.Errorf("--target and --target-url are mutually exclusive")
	case reviseTargetURL != "":
		return ingestion.TargetFromURL(ctx, reviseTargetURL, reviseUseBrowser, reviseVerbose)
	case reviseTargetFile != "":
		return ingestion.TargetFromFile(reviseTargetFile)
	}
	return "", nil
}

// parseLockKinds converts --lock values into section kinds.
func parseLockKinds(raw []string) (map[types.SectionKind]bool, error) {
	locked := make(map[types.SectionKind]bool, len(raw))
	for _, value := range raw {
		kind, ok := types.ParseKind(value)
		if !ok {
			return nil, fmt.Errorf("unknown section kind %q (valid: %v)", value, types.AllKinds)
		}
		locked[kind] = true
	}
	return locked, nil
}
