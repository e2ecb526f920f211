package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/csiboto/kyle/internal/observability"
)

var analyzeURLCmd = &cobra.Command{
	Use:   "analyze-url <url>",
	Short: "Analyze content at a URL against the profile",
	Long:  "Ask the service for a narrative analysis of the content at a URL compared with the current profile, then reduce it to newly identified skills.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyzeURL,
}

func init() {
	rootCmd.AddCommand(analyzeURLCmd)
}

func runAnalyzeURL(cmd *cobra.Command, args []string) error {
	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	result, err := a.AnalyzeURL(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintURLAnalysis(result)
	return nil
}
