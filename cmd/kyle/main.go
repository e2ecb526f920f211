// Package main provides the entry point for Kyle, a personal job-application
// assistant backed by a generative text service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/csiboto/kyle/internal/assistant"
	"github.com/csiboto/kyle/internal/profile"
)

var profilePath string

var rootCmd = &cobra.Command{
	Use:   "kyle",
	Short: "Kyle — personal job-application assistant",
	Long:  "Kyle composes cover letters and CVs, researches companies, analyzes job fit, and answers questions, all grounded in a single candidate profile.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", defaultProfilePath(), "Path to the profile JSON document")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultProfilePath() string {
	if path := os.Getenv("KYLE_PROFILE"); path != "" {
		return path
	}
	return "charles_profile.json"
}

// newAssistant loads the profile once and wires the assistant. A missing
// GEMINI_API_KEY does not fail here; each task call reports it instead.
func newAssistant(ctx context.Context) (*assistant.Assistant, error) {
	prof, err := profile.Load(profilePath)
	if err != nil {
		return nil, err
	}

	return assistant.New(ctx, assistant.Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Profile: prof,
	})
}
