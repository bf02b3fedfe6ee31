package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one listing against one profile",
	Long:  "Computes the 0-100 match score and component breakdown for one listing from a listings file. The rest of the file supplies term weighting.",
	RunE:  runScore,
}

var (
	scoreListingsFile string
	scoreProfileFile  string
	scoreListingID    string
	scoreOutput       string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreListingsFile, "listings", "l", "", "Path to listings JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreListingID, "id", "", "Listing ID to score (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Write JSON output to this file instead of stdout")

	for _, name := range []string{"listings", "profile", "id"} {
		if err := scoreCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	profile, err := catalog.LoadProfile(scoreProfileFile)
	if err != nil {
		return err
	}
	corpus, err := catalog.LoadListings(scoreListingsFile)
	if err != nil {
		return err
	}

	listing := findListing(corpus, scoreListingID)
	if listing == nil {
		return fmt.Errorf("listing not found: %s", scoreListingID)
	}

	engine := ranking.NewEngine(catalog.NewListings(corpus), cfg.RankingConfig(), ranking.WithLogger(logger))
	result := engine.Score(profile, listing, corpus)
	return writeJSON(cmd.OutOrStdout(), scoreOutput, result)
}

func findListing(corpus []types.Listing, id string) *types.Listing {
	for i := range corpus {
		if corpus[i].ID == id {
			return &corpus[i]
		}
	}
	return nil
}
