package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csiboto/kyle/internal/observability"
	"github.com/csiboto/kyle/internal/types"
)

var (
	fitCompany string
	fitRole    string
	fitJobPath string
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Analyze how well the profile fits a job description",
	RunE:  runFit,
}

func init() {
	fitCmd.Flags().StringVar(&fitCompany, "company", "", "Company name")
	fitCmd.Flags().StringVar(&fitRole, "role", "", "Role title")
	fitCmd.Flags().StringVar(&fitJobPath, "job", "", "Path to the job description text file (required)")
	_ = fitCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, _ []string) error {
	jobText, err := os.ReadFile(fitJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description %s: %w", fitJobPath, err)
	}

	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	fit, err := a.AnalyzeFit(cmd.Context(), types.GenerationRequest{
		Company:        fitCompany,
		Role:           fitRole,
		JobDescription: string(jobText),
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintFitAnalysis(fit)
	return nil
}
