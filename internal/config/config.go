// Package config provides configuration loading and validation for the matcher service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/normalizer"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Taxonomy sources; file and database are mutually exclusive
	TaxonomyFile string `json:"taxonomy_file,omitempty"` // Path to taxonomy JSON file
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL

	// Normalization
	FuzzyEnabled *bool `json:"fuzzy_enabled,omitempty"` // Enable the fuzzy resolution tier (default true)
	FuzzyBound   int   `json:"fuzzy_bound,omitempty"`   // Edit-distance bound for fuzzy matching

	// Scoring policy overrides; zero values fall back to defaults
	Scoring *matching.ScoringConfig `json:"scoring,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed match summaries
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
	if c.TaxonomyFile != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'taxonomy_file' and 'database_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FuzzyBound < 0 {
		return fmt.Errorf("config error: 'fuzzy_bound' must be non-negative")
	}

	if c.Scoring != nil {
		if c.Scoring.MandatoryWeight < 0 || c.Scoring.OptionalWeight < 0 {
			return fmt.Errorf("config error: scoring weights must be non-negative")
		}
		if c.Scoring.ExperiencePenalty < 0 || c.Scoring.ExperiencePenalty > 1 {
			return fmt.Errorf("config error: 'experience_penalty' must be between 0 and 1")
		}
		if c.Scoring.PartialThreshold > c.Scoring.StrongThreshold {
			return fmt.Errorf("config error: 'partial_threshold' must not exceed 'strong_threshold'")
		}
	}

	if c.TaxonomyFile != "" {
		if _, err := os.Stat(c.TaxonomyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyFile)
		}
	}

	return nil
}

// ScoringConfig resolves the effective scoring policy: file overrides when
// present, defaults otherwise.
func (c *Config) ScoringConfig() matching.ScoringConfig {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return matching.DefaultScoringConfig()
}

// NormalizerOptions resolves the effective fuzzy-tier options.
func (c *Config) NormalizerOptions() normalizer.Options {
	opts := normalizer.DefaultOptions()
	if c.FuzzyEnabled != nil {
		opts.FuzzyEnabled = *c.FuzzyEnabled
	}
	if c.FuzzyBound > 0 {
		opts.FuzzyBound = c.FuzzyBound
	}
	return opts
}
