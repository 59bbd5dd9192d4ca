package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-reviser/internal/ingestion"
	"github.com/jonathan/resume-reviser/internal/llm"
	"github.com/jonathan/resume-reviser/internal/observability"
	"github.com/jonathan/resume-reviser/internal/revision"
	"github.com/jonathan/resume-reviser/internal/types"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage revision jobs for stored documents",
}

var jobRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a revision job against a stored document",
	Long:  "Creates a revision job for a document in the database, rewrites its unlocked sections, and persists the proposal for later inspection and merging.",
	RunE:  runJobRun,
}

var jobShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a revision job and its proposal",
	RunE:  runJobShow,
}

var (
	jobDocumentID   string
	jobMode         string
	jobTargetFile   string
	jobTargetURL    string
	jobInstructions string
	jobAPIKey       string
	jobThrottleSec  int
	jobUseBrowser   bool
	jobVerbose      bool
	jobShowID       string
)

func init() {
	jobRunCmd.Flags().StringVar(&jobDocumentID, "document-id", "", "Document UUID (required)")
	jobRunCmd.Flags().StringVarP(&jobMode, "mode", "m", "balanced", "Rewrite mode: minimal, balanced, or aggressive")
	jobRunCmd.Flags().StringVarP(&jobTargetFile, "target", "t", "", "Path to target role description text file")
	jobRunCmd.Flags().StringVar(&jobTargetURL, "target-url", "", "URL of the target role posting")
	jobRunCmd.Flags().StringVarP(&jobInstructions, "instructions", "i", "", "Additional rewriting instructions")
	jobRunCmd.Flags().StringVar(&jobAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	jobRunCmd.Flags().IntVar(&jobThrottleSec, "throttle", 0, "Seconds to wait between generation calls")
	jobRunCmd.Flags().BoolVar(&jobUseBrowser, "use-browser", false, "Render the target URL in a headless browser if needed")
	jobRunCmd.Flags().BoolVarP(&jobVerbose, "verbose", "v", false, "Print detailed progress information")
	jobRunCmd.Flags().StringVar(&databaseURLFlag, "db", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	if err := jobRunCmd.MarkFlagRequired("document-id"); err != nil {
		panic(fmt.Sprintf("failed to mark document-id flag as required: %v", err))
	}

	jobShowCmd.Flags().StringVar(&jobShowID, "id", "", "Job UUID (required)")
	jobShowCmd.Flags().StringVar(&databaseURLFlag, "db", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	if err := jobShowCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	jobCmd.AddCommand(jobRunCmd)
	jobCmd.AddCommand(jobShowCmd)
	rootCmd.AddCommand(jobCmd)
}

func runJobRun(_ *cobra.Command, _ []string) error {
	documentID, err := uuid.Parse(jobDocumentID)
	if err != nil {
		return fmt.Errorf("invalid document ID: %w", err)
	}

	mode, err := types.ParseMode(jobMode)
	if err != nil {
		return err
	}

	apiKey := jobAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	var target string
	switch {
	case jobTargetURL != "" && jobTargetFile != "":
		return fmt.Errorf("--target and --target-url are mutually exclusive")
	case jobTargetURL != "":
		target, err = ingestion.TargetFromURL(ctx, jobTargetURL, jobUseBrowser, jobVerbose)
	case jobTargetFile != "":
		target, err = ingestion.TargetFromFile(jobTargetFile)
	}
	if err != nil {
		return err
	}

	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	gateway, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = gateway.Close() }()

	jobID, err := database.CreateJob(ctx, documentID, mode)
	if err != nil {
		return err
	}
	fmt.Printf("Created job %s\n", jobID)

	opts := []revision.Option{}
	if jobThrottleSec > 0 {
		opts = append(opts, revision.WithThrottle(time.Duration(jobThrottleSec)*time.Second))
	}
	if jobVerbose {
		opts = append(opts, revision.WithProgress(func(event revision.ProgressEvent) {
			fmt.Printf("  section %-13s %s\n", event.Kind, event.Change)
		}))
	}

	orch := revision.NewOrchestrator(database, database, gateway, opts...)
	job := &types.RevisionJob{
		ID:               jobID,
		TargetDocumentID: documentID,
		State:            types.JobQueued,
		Mode:             mode,
	}

	result, err := orch.RunJob(ctx, job, revision.JobRequest{
		DocumentID:        documentID,
		Mode:              mode,
		TargetDescription: target,
		Instructions:      jobInstructions,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job)
	printer.PrintProposals(result.Proposals)
	return nil
}

func runJobShow(_ *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(jobShowID)
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	ctx := context.Background()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	job, err := database.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job not found: %s", jobID)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJob(job)

	proposals, _, err := database.GetProposal(ctx, jobID)
	if err != nil {
		return err
	}
	if len(proposals) > 0 {
		printer.PrintProposals(proposals)
	}
	return nil
}
