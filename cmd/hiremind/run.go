package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiremind/internal/agent"
	"github.com/jonathan/hiremind/internal/config"
	"github.com/jonathan/hiremind/internal/llm"
	"github.com/jonathan/hiremind/internal/observability"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/workflow"
)

var runCommand = &cobra.Command{
	Use:   "run [role description]",
	Short: "Run the full hiring workflow end-to-end",
	Long: `Executes the six-stage hiring pipeline for a role description: role definition -> job description -> interview planning -> timeline estimation -> salary benchmarking -> offer generation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWorkflowCmd,
}

var (
	runConfigPath  string
	runCompany     string
	runDepartment  string
	runSessionID   string
	runAPIKey      string
	runModel       string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runCompany, "company", "c", "", "Company name used in generated documents")
	runCommand.Flags().StringVarP(&runDepartment, "department", "d", "", "Department or team (optional, extracted from output when omitted)")
	runCommand.Flags().StringVar(&runSessionID, "session", "", "Session id (optional, resumes an incomplete run)")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runModel, "model", "", "LLM model name")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print each stage's output")

	rootCmd.AddCommand(runCommand)
}

func runWorkflowCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("company") {
		cfg.CompanyName = runCompany
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = runModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		CompanyName: "[Company Name]",
		Model:       llm.DefaultModel,
	})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	st, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close()

	client, err := llm.NewClient(ctx, &llm.Config{Model: cfg.Model}, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	engine := workflow.New(st, agent.NewRegistry(client))
	if cfg.StageTimeoutMinutes > 0 {
		engine.SetStageTimeout(time.Duration(cfg.StageTimeoutMinutes) * time.Minute)
	}
	if cfg.StateTTLHours > 0 {
		engine.SetStateTTL(time.Duration(cfg.StateTTLHours) * time.Hour)
	}

	printer := observability.NewPrinter(os.Stdout)
	total := len(workflow.Stages())
	stageNum := 0

	result, err := engine.Start(ctx, workflow.StartOptions{
		Input:       args[0],
		CompanyName: cfg.CompanyName,
		Department:  runDepartment,
		SessionID:   runSessionID,
		OnProgress: func(event workflow.StageEvent) {
			if event.CompletedStages == nil && event.Err == "" {
				stageNum++
				fmt.Printf("Stage %d/%d: %s...\n", stageNum, total, event.Stage)
			}
		},
	})
	if err != nil {
		return fmt.Errorf("workflow failed: %w", err)
	}

	printer.PrintRunSummary(result)
	if cfg.Verbose {
		printStageOutputs(printer, result)
	}

	if !result.Success {
		return fmt.Errorf("workflow finished with error: %s", result.Error)
	}
	return nil
}

func printStageOutputs(printer *observability.Printer, result *workflow.Result) {
	if result.RoleDefinition != nil {
		printer.PrintStageOutput(workflow.StageRoleDefinition, result.RoleDefinition.Output)
	}
	printer.PrintStageOutput(workflow.StageJDGeneration, result.JobDescription)
	if result.InterviewPlan != nil {
		printer.PrintStageOutput(workflow.StageInterviewPlanning, result.InterviewPlan.Output)
	}
	if result.Timeline != nil {
		printer.PrintStageOutput(workflow.StageTimelineEstimation, result.Timeline.Output)
	}
	if result.SalaryBenchmark != nil {
		printer.PrintStageOutput(workflow.StageSalaryBenchmarking, result.SalaryBenchmark.Output)
	}
	printer.PrintStageOutput(workflow.StageOfferGeneration, result.OfferLetter)
}
