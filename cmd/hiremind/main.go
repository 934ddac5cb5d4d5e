// Package main provides the entry point for the HireMind hiring workflow service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hiremind",
	Short: "HireMind hiring workflow backend",
	Long:  "HireMind plans a hiring process end-to-end: role definition, job description, interview plan, timeline, salary benchmark, and offer letter, with checkpointed multi-stage execution over a REST API or the CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
