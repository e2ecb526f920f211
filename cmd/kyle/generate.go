package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/csiboto/kyle/internal/types"
)

var (
	genCompany      string
	genRole         string
	genJobPath      string
	genResearchPath string
	genCVStyle      string
)

var generateCmd = &cobra.Command{
	Use:       "generate <letter|cv>",
	Short:     "Generate a cover letter or CV",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"letter", "cv"},
	RunE:      runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genCompany, "company", "", "Company name")
	generateCmd.Flags().StringVar(&genRole, "role", "", "Role title")
	generateCmd.Flags().StringVar(&genJobPath, "job", "", "Path to a job description text file")
	generateCmd.Flags().StringVar(&genResearchPath, "research", "", "Path to prior company research text")
	generateCmd.Flags().StringVar(&genCVStyle, "style", "", "CV style: localisation, language, or product")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req := types.GenerationRequest{
		Company: genCompany,
		Role:    genRole,
		CVStyle: types.CVStyle(genCVStyle),
	}

	if genJobPath != "" {
		data, err := os.ReadFile(genJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description %s: %w", genJobPath, err)
		}
		req.JobDescription = string(data)
	}
	if genResearchPath != "" {
		data, err := os.ReadFile(genResearchPath)
		if err != nil {
			return fmt.Errorf("failed to read research %s: %w", genResearchPath, err)
		}
		req.CompanyResearch = string(data)
	}

	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	var content string
	switch args[0] {
	case "letter":
		content, err = a.GenerateLetter(cmd.Context(), req)
	case "cv":
		content, err = a.GenerateCV(cmd.Context(), req)
	default:
		return fmt.Errorf("unknown artifact %q: expected letter or cv", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Println(content)
	return nil
}
