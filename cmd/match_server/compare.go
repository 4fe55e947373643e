package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/comparison"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	compareConfigPath string
	compareTaxonomy   string
	compareVacancy    string
	compareVerbose    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [resume.json ...]",
	Short: "Compare 2-5 candidate profiles against one vacancy",
	Long: `Load a vacancy definition and 2-5 extracted candidate profiles from JSON
files, match each candidate, and print the ranked comparison as JSON.`,
	Args: cobra.RangeArgs(comparison.MinCandidates, comparison.MaxCandidates),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareConfigPath, "config", "", "Path to config.json file")
	compareCmd.Flags().StringVarP(&compareTaxonomy, "taxonomy", "t", "", "Path to taxonomy JSON file (required)")
	compareCmd.Flags().StringVarP(&compareVacancy, "vacancy", "j", "", "Path to vacancy JSON file (required)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print a formatted comparison summary to stderr")
	_ = compareCmd.MarkFlagRequired("taxonomy")
	_ = compareCmd.MarkFlagRequired("vacancy")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if compareConfigPath != "" {
		loaded, err := config.LoadConfig(compareConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	snapshot, err := taxonomy.LoadFile(compareTaxonomy)
	if err != nil {
		return err
	}

	var vacancy types.Vacancy
	if err := loadJSONFile(compareVacancy, &vacancy); err != nil {
		return err
	}
	if err := vacancy.Validate(); err != nil {
		return err
	}

	candidates := make([]types.CandidateProfile, 0, len(args))
	for _, path := range args {
		var candidate types.CandidateProfile
		if err := loadJSONFile(path, &candidate); err != nil {
			return err
		}
		if candidate.ResumeID == "" {
			candidate.ResumeID = path
		}
		candidates = append(candidates, candidate)
	}

	engine := matching.NewEngine(snapshot, cfg.ScoringConfig(), cfg.NormalizerOptions())
	result, err := comparison.NewOrchestrator(engine).Compare(cmd.Context(), vacancy, candidates)
	if err != nil {
		return err
	}

	if compareVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintComparison(result)
		for i := range result.Ranked {
			printer.PrintMatchOutcome(&result.Ranked[i])
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func loadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
