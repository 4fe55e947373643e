package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/server"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var (
	serveConfigPath   string
	servePort         int
	serveTaxonomyFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes match, compare, and taxonomy read endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTaxonomyFile, "taxonomy", "", "Path to taxonomy JSON file (defaults to DATABASE_URL-backed taxonomy)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if serveTaxonomyFile != "" {
		cfg.TaxonomyFile = serveTaxonomyFile
	}
	if cfg.DatabaseURL == "" && cfg.TaxonomyFile == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	snapshot, err := loadSnapshot(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:    cfg.Port,
		Scoring: cfg.ScoringConfig(),
		Options: cfg.NormalizerOptions(),
	}, snapshot)

	return srv.Start()
}

// loadSnapshot builds the taxonomy snapshot from whichever source is
// configured: a JSON file, or the database.
func loadSnapshot(ctx context.Context, cfg *config.Config) (*taxonomy.Snapshot, error) {
	if cfg.TaxonomyFile != "" {
		return taxonomy.LoadFile(cfg.TaxonomyFile)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("either a taxonomy file or DATABASE_URL is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	return database.LoadSnapshot(ctx)
}
