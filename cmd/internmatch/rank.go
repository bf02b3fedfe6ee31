package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/observability"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank listings for a candidate profile",
	Long:  "Scores every listing in the corpus against a candidate profile and prints the best matches as JSON. With --profiles, ranks several profiles concurrently.",
	RunE:  runRank,
}

var (
	rankSources      sourceFlags
	rankProfilesFile string
	rankCategory     string
	rankLimit        int
	rankMinScore     int
	rankExplain      bool
	rankOutput       string
)

func init() {
	addSourceFlags(rankCmd.Flags(), &rankSources)
	rankCmd.Flags().StringVar(&rankProfilesFile, "profiles", "", "Path to a JSON array of profiles to rank in one batch")
	rankCmd.Flags().StringVar(&rankCategory, "category", "", `Only rank listings in this category ("all" for every category)`)
	rankCmd.Flags().IntVarP(&rankLimit, "limit", "n", 0, "Maximum number of results (defaults to the config file, then 10)")
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", -1, "Minimum match score 0-100 (defaults to the config file, then 30)")
	rankCmd.Flags().BoolVar(&rankExplain, "explain", false, "Attach an explanation to each result")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Write JSON output to this file instead of stdout")
	rankCmd.MarkFlagsMutuallyExclusive("profile", "profiles")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime(cmd.Context(), rankSources)
	if err != nil {
		return err
	}
	defer rt.close()

	opts := rt.cfg.RankOptions()
	opts.Category = rankCategory
	opts.IncludeExplanations = rankExplain
	if rankLimit > 0 {
		opts.Limit = rankLimit
	}
	if rankMinScore >= 0 {
		opts.MinMatchScore = &rankMinScore
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid ranking options: %w", err)
	}

	if rankProfilesFile != "" {
		profiles, err := catalog.LoadProfiles(rankProfilesFile)
		if err != nil {
			return err
		}
		results := rt.engine.RankBatch(cmd.Context(), profiles, opts)
		if verbose {
			printer := observability.NewPrinter(cmd.ErrOrStderr())
			for i := range results {
				printer.PrintProfile(&profiles[i])
				printer.PrintRecommendations(&results[i].Recommendations)
			}
		}
		return writeJSON(cmd.OutOrStdout(), rankOutput, results)
	}

	resp := rt.engine.Rank(cmd.Context(), nil, opts)
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRecommendations(&resp)
	}
	if err := writeJSON(cmd.OutOrStdout(), rankOutput, resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("ranking failed: %s", resp.Error)
	}
	return nil
}
