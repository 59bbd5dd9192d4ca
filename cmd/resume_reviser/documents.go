package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-reviser/internal/db"
	"github.com/jonathan/resume-reviser/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Store a LaTeX resume in the database",
	RunE:  runImport,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock or unlock a section of a stored document",
	Long:  "Marks one section of a document's snapshot as locked so revision jobs pass it through untouched, or unlocks it again with --unlock.",
	RunE:  runLock,
}

var (
	importDocumentFile string
	importName         string
	lockDocumentID     string
	lockKind           string
	lockUnlock         bool
	databaseURLFlag    string
)

func init() {
	importCmd.Flags().StringVarP(&importDocumentFile, "document", "d", "", "Path to LaTeX resume file (required)")
	importCmd.Flags().StringVarP(&importName, "name", "n", "", "Display name for the document")
	importCmd.Flags().StringVar(&databaseURLFlag, "db", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	if err := importCmd.MarkFlagRequired("document"); err != nil {
		panic(fmt.Sprintf("failed to mark document flag as required: %v", err))
	}

	lockCmd.Flags().StringVar(&lockDocumentID, "document-id", "", "Document UUID (required)")
	lockCmd.Flags().StringVarP(&lockKind, "kind", "k", "", "Section kind to lock (required)")
	lockCmd.Flags().BoolVar(&lockUnlock, "unlock", false, "Unlock the section instead of locking it")
	lockCmd.Flags().StringVar(&databaseURLFlag, "db", "", "PostgreSQL URL (overrides DATABASE_URL env var)")
	if err := lockCmd.MarkFlagRequired("document-id"); err != nil {
		panic(fmt.Sprintf("failed to mark document-id flag as required: %v", err))
	}
	if err := lockCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(lockCmd)
}

// connectDB opens the database from the --db flag or DATABASE_URL.
func connectDB(ctx context.Context) (*db.DB, error) {
	url := databaseURLFlag
	if url == "" {
		url = os.Getenv("DATABASE_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db flag)")
	}
	return db.Connect(ctx, url)
}

func runImport(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(importDocumentFile)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	name := importName
	if name == "" {
		name = importDocumentFile
	}

	ctx := context.Background()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.CreateDocument(ctx, name, string(content))
	if err != nil {
		return err
	}

	fmt.Printf("Document stored as %s\n", id)
	return nil
}

func runLock(_ *cobra.Command, _ []string) error {
	documentID, err := uuid.Parse(lockDocumentID)
	if err != nil {
		return fmt.Errorf("invalid document ID: %w", err)
	}

	kind, ok := types.ParseKind(lockKind)
	if !ok {
		return fmt.Errorf("unknown section kind %q (valid: %v)", lockKind, types.AllKinds)
	}

	ctx := context.Background()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.SetSectionLock(ctx, documentID, kind, !lockUnlock); err != nil {
		return err
	}

	verb := "locked"
	if lockUnlock {
		verb = "unlocked"
	}
	fmt.Printf("Section %s %s for document %s\n", kind, verb, documentID)
	return nil
}
