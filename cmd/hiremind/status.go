package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiremind/internal/agent"
	"github.com/jonathan/hiremind/internal/observability"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/workflow"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status <session-id>",
	Short: "Show the latest checkpointed state of a workflow run",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusCmd,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print the raw result as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	st, err := store.Connect(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close()

	// Status is a pure read; no LLM client is needed.
	engine := workflow.New(st, agent.NewRegistry(nil))

	report, err := engine.Status(ctx, args[0])
	if err != nil {
		return err
	}

	if statusJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Status: %s\n", report.Status)
	observability.NewPrinter(os.Stdout).PrintRunSummary(report.Result)
	return nil
}
