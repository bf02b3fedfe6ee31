package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/observability"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain how well one listing matches a profile",
	Long:  "Scores one listing against the candidate profile, using the full corpus for term weighting, and prints the explanation as JSON.",
	RunE:  runExplain,
}

var (
	explainSources   sourceFlags
	explainListingID string
	explainOutput    string
)

func init() {
	addSourceFlags(explainCmd.Flags(), &explainSources)
	explainCmd.Flags().StringVar(&explainListingID, "id", "", "Listing ID to explain (required)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Write JSON output to this file instead of stdout")

	if err := explainCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context(), explainSources)
	if err != nil {
		return err
	}
	defer rt.close()

	explanation, err := rt.engine.ExplainByID(cmd.Context(), nil, explainListingID)
	if err != nil {
		return fmt.Errorf("failed to explain listing: %w", err)
	}

	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintExplanation(explainListingID, explanation)
	}
	return writeJSON(cmd.OutOrStdout(), explainOutput, explanation)
}
