// Package config provides configuration loading and validation for the matcher.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/internship-matcher/internal/ranking"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Environment variables that override file values.
const (
	EnvDatabaseURL  = "DATABASE_URL"
	EnvLogLevel     = "LOG_LEVEL"
	EnvFetchTimeout = "MATCH_FETCH_TIMEOUT"
	EnvPort         = "PORT"
)

// Default values applied by Defaults.
const (
	DefaultDatabaseURL  = "sqlite:///./app.db"
	DefaultLogLevel     = "info"
	DefaultPort         = 8080
	DefaultFetchTimeout = "5s"
)

// Config represents the matcher configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Scoring
	Weights               *types.Weights `json:"weights,omitempty"`
	MinMatchScore         *int           `json:"min_match_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Limit                 int            `json:"limit,omitempty" validate:"gte=0,lte=100"`
	HomeRegion            string         `json:"home_region,omitempty"`
	NormalizeWeights      bool           `json:"normalize_weights,omitempty"`
	CapPartialSkillCredit bool           `json:"cap_partial_skill_credit,omitempty"`
	FetchTimeout          string         `json:"fetch_timeout,omitempty"` // Go duration, e.g. "5s"

	// Sources
	DatabaseURL  string `json:"database_url,omitempty"`  // Postgres or SQLite URL
	ListingsFile string `json:"listings_file,omitempty"` // JSON listings file, used instead of the database
	ProfileFile  string `json:"profile_file,omitempty"`  // JSON candidate profile

	// Runtime
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Port     int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	w := types.DefaultWeights()
	minScore := types.DefaultMinMatchScore
	return Config{
		Weights:       &w,
		MinMatchScore: &minScore,
		Limit:         types.DefaultLimit,
		HomeRegion:    ranking.DefaultHomeRegion,
		FetchTimeout:  DefaultFetchTimeout,
		DatabaseURL:   DefaultDatabaseURL,
		LogLevel:      DefaultLogLevel,
		Port:          DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be positive")
		}
	}

	if c.ListingsFile != "" {
		if _, err := os.Stat(c.ListingsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: listings file not found: %s", c.ListingsFile)
		}
	}
	if c.ProfileFile != "" {
		if _, err := os.Stat(c.ProfileFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.ProfileFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.MinMatchScore == nil {
		result.MinMatchScore = defaults.MinMatchScore
	}
	if result.Limit == 0 {
		result.Limit = defaults.Limit
	}
	if result.HomeRegion == "" {
		result.HomeRegion = defaults.HomeRegion
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListingsFile == "" {
		result.ListingsFile = defaults.ListingsFile
	}
	if result.ProfileFile == "" {
		result.ProfileFile = defaults.ProfileFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvFetchTimeout); v != "" {
		c.FetchTimeout = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// Load reads the optional config file, applies environment overrides and
// defaults, and validates the result.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// RankingConfig converts the file configuration into engine settings.
func (c *Config) RankingConfig() ranking.Config {
	cfg := ranking.DefaultConfig()
	if c.Weights != nil {
		cfg.Weights = *c.Weights
	}
	if region := strings.ToLower(strings.TrimSpace(c.HomeRegion)); region != "" {
		cfg.HomeRegion = region
	}
	if d, err := time.ParseDuration(c.FetchTimeout); err == nil && d > 0 {
		cfg.FetchTimeout = d
	}
	cfg.NormalizeWeights = c.NormalizeWeights
	cfg.CapPartialSkillCredit = c.CapPartialSkillCredit
	return cfg
}

// RankOptions returns the default ranking options from the configuration.
func (c *Config) RankOptions() types.RankOptions {
	return types.RankOptions{
		Limit:         c.Limit,
		MinMatchScore: c.MinMatchScore,
	}
}
