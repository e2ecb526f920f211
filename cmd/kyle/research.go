package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var researchCmd = &cobra.Command{
	Use:   "research <company>",
	Short: "Produce a six-section company briefing",
	Args:  cobra.ExactArgs(1),
	RunE:  runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	briefing, err := a.ResearchCompany(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(briefing)
	return nil
}
