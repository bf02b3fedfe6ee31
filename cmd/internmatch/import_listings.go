package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/fetch"
	"github.com/jonathan/internship-matcher/internal/types"
)

var importCmd = &cobra.Command{
	Use:   "import-listings",
	Short: "Load listings and profiles into the database",
	Long:  "Validates a listings JSON file or feed URL and upserts every listing into the database named by DATABASE_URL or the config file. Optionally stores a candidate profile too.",
	RunE:  runImport,
}

var (
	importListingsFile string
	importFeedURL      string
	importProfileFile  string
	importDatabaseURL  string
)

func init() {
	importCmd.Flags().StringVarP(&importListingsFile, "listings", "l", "", "Path to listings JSON file")
	importCmd.Flags().StringVar(&importFeedURL, "url", "", "URL of a JSON listing feed; HTML descriptions are converted to text")
	importCmd.Flags().StringVarP(&importProfileFile, "profile", "p", "", "Path to a candidate profile JSON file to store")
	importCmd.Flags().StringVar(&importDatabaseURL, "database-url", "", "Database URL (defaults to DATABASE_URL or the config file)")

	importCmd.MarkFlagsOneRequired("listings", "url")
	importCmd.MarkFlagsMutuallyExclusive("listings", "url")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if importDatabaseURL != "" {
		cfg.DatabaseURL = importDatabaseURL
	}
	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	var listings []types.Listing
	if importFeedURL != "" {
		listings, err = fetch.Listings(cmd.Context(), importFeedURL, nil)
	} else {
		listings, err = catalog.LoadListings(importListingsFile)
	}
	if err != nil {
		return err
	}

	store, err := db.Open(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	n, err := store.SaveListings(cmd.Context(), listings)
	if err != nil {
		return fmt.Errorf("failed to import listings: %w", err)
	}
	logger.Info("imported listings", "count", n, "driver", store.Driver())
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d listings\n", n)

	if importProfileFile != "" {
		profile, err := catalog.LoadProfile(importProfileFile)
		if err != nil {
			return err
		}
		if profile.ID == "" {
			return fmt.Errorf("profile in %s has no id", importProfileFile)
		}
		if err := store.SaveProfile(cmd.Context(), profile); err != nil {
			return fmt.Errorf("failed to store profile: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored profile %s\n", profile.ID)
	}
	return nil
}
