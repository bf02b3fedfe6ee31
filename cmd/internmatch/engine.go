package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/jonathan/internship-matcher/internal/catalog"
	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/logging"
	"github.com/jonathan/internship-matcher/internal/ranking"
)

// sourceFlags selects where listings and the profile come from. Flags win over the config file.
type sourceFlags struct {
	listingsFile string
	profileFile  string
	profileID    string
}

// runtime bundles everything a command needs. close releases the database, if any.
type runtime struct {
	cfg    config.Config
	logger *logging.Logger
	engine *ranking.Engine
	store  *db.DB
}

func (r *runtime) close() {
	if r.store != nil {
		r.store.Close()
	}
	_ = r.logger.Sync()
}

// newLogger builds the CLI logger. Verbose mode uses the console encoder at debug level.
func newLogger(level string) *logging.Logger {
	if verbose {
		return logging.NewDevelopment()
	}
	return logging.New(level)
}

// openRuntime loads configuration and wires the engine to its listing and profile sources.
func openRuntime(ctx context.Context, src sourceFlags) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if src.listingsFile != "" {
		cfg.ListingsFile = src.listingsFile
	}
	if src.profileFile != "" {
		cfg.ProfileFile = src.profileFile
	}

	rt := &runtime{cfg: cfg, logger: newLogger(cfg.LogLevel)}

	var listings ranking.ListingProvider
	if cfg.ListingsFile != "" {
		corpus, err := catalog.OpenListings(cfg.ListingsFile)
		if err != nil {
			return nil, err
		}
		rt.logger.Debug("loaded listings file", "path", cfg.ListingsFile, "count", corpus.Len())
		listings = corpus
	} else {
		store, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		rt.store = store
		rt.logger.Debug("opened database", "driver", store.Driver())
		listings = store
	}

	opts := []ranking.Option{ranking.WithLogger(rt.logger)}
	switch {
	case cfg.ProfileFile != "":
		opts = append(opts, ranking.WithProfileProvider(catalog.ProfileFile{Path: cfg.ProfileFile}))
	case src.profileID != "" && rt.store != nil:
		opts = append(opts, ranking.WithProfileProvider(rt.store.ProfileSource(src.profileID)))
	}

	rt.engine = ranking.NewEngine(listings, cfg.RankingConfig(), opts...)
	return rt, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := w.Write(data)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func addSourceFlags(flags *pflag.FlagSet, src *sourceFlags) {
	flags.StringVarP(&src.listingsFile, "listings", "l", "", "Path to listings JSON file (defaults to the database)")
	flags.StringVarP(&src.profileFile, "profile", "p", "", "Path to candidate profile JSON file")
	flags.StringVar(&src.profileID, "profile-id", "", "ID of a candidate profile stored in the database")
}
