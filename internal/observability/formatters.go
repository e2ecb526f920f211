// Package observability provides formatted output for CLI results
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/csiboto/kyle/internal/types"
)

const (
	boxWidth       = 60
	maxItemsToShow = 5
)

// Printer handles formatted result output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFitAnalysis outputs a human-readable fit analysis summary
func (p *Printer) PrintFitAnalysis(fit *types.FitAnalysis) {
	if fit == nil {
		return
	}

	if !fit.Parsed() {
		p.printBox("JOB FIT (unparsed)", "Structured output unavailable; raw analysis follows.")
		fmt.Fprintln(p.out, fit.Raw) //nolint:errcheck
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:      %d/10\n", fit.FitScore))
	sb.WriteString(fmt.Sprintf("CV version: %s\n", fit.CVVersion))
	if fit.FitSummary != "" {
		sb.WriteString("\n" + fit.FitSummary + "\n")
	}
	appendList(&sb, "Matching skills", fit.MatchingSkills)
	appendList(&sb, "Skill gaps", fit.SkillGaps)
	appendList(&sb, "Red flags", fit.RedFlags)
	appendList(&sb, "Recommendations", fit.Recommendations)

	p.printBox("JOB FIT", sb.String())
}

// PrintURLAnalysis outputs the narrative followed by any new skills
func (p *Printer) PrintURLAnalysis(result *types.URLAnalysis) {
	if result == nil {
		return
	}

	fmt.Fprintln(p.out, result.Analysis) //nolint:errcheck

	var sb strings.Builder
	if len(result.NewSkills) == 0 {
		sb.WriteString("No new skills identified.")
	} else {
		for _, skill := range result.NewSkills {
			sb.WriteString("• " + skill + "\n")
		}
	}
	p.printBox("NEW SKILLS", sb.String())
}

func appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + title + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString("  • " + items[i] + "\n")
	}
	if len(items) > count {
		sb.WriteString(fmt.Sprintf("  … and %d more\n", len(items)-count))
	}
}
