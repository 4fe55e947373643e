// Package main provides the entry point for the Resume Matcher service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_server",
	Short: "Resume Matcher service",
	Long:  "Resume Matcher scores candidate resumes against job vacancy requirements using a canonical skill taxonomy, and ranks candidates per vacancy via REST API or CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
