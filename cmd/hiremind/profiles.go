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

var profilesLimit int

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect saved hiring profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent hiring profiles, newest first",
	Args:  cobra.NoArgs,
	RunE:  runProfilesList,
}

var profilesGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Print one hiring profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesGet,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a hiring profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesDelete,
}

func init() {
	profilesListCmd.Flags().IntVar(&profilesLimit, "limit", 10, "Maximum number of profiles to list")

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesGetCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
	rootCmd.AddCommand(profilesCmd)
}

// profileEngine builds an engine for profile reads and deletes. No LLM
// client is needed since no agent ever runs on these paths.
func profileEngine(ctx context.Context) (*workflow.Engine, store.Store, error) {
	st, err := store.Connect(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to store: %w", err)
	}
	return workflow.New(st, agent.NewRegistry(nil)), st, nil
}

func runProfilesList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	engine, st, err := profileEngine(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	summaries, err := engine.ListProfiles(ctx, profilesLimit)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintProfileSummaries(summaries)
	return nil
}

func runProfilesGet(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	engine, st, err := profileEngine(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := engine.LoadProfile(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}

func runProfilesDelete(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	engine, st, err := profileEngine(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	existed, err := engine.DeleteProfile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if !existed {
		return fmt.Errorf("no profile found for session %s", args[0])
	}

	fmt.Printf("Deleted profile %s\n", args[0])
	return nil
}
