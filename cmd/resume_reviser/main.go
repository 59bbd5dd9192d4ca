// Package main provides the resume_reviser CLI: it segments LaTeX resumes,
// runs revision jobs against a generation backend, and merges accepted
// proposals back into a full document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_reviser",
	Short: "LaTeX resume revision engine",
	Long:  "Resume Reviser splits a LaTeX resume into logical sections, rewrites the unlocked ones with an LLM toward a target role, and reassembles the result without ever touching locked content.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
