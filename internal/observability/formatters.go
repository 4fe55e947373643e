// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchOutcome outputs a human-readable summary of one candidate's match.
func (p *Printer) PrintMatchOutcome(outcome *types.MatchOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resume:     %s\n", outcome.ResumeID))
	sb.WriteString(fmt.Sprintf("Score:      %.1f%%\n", outcome.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Assessment: %s\n", outcome.OverallAssessment))
	sb.WriteString("\n")

	if len(outcome.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(outcome.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := outcome.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s", m.RequirementSkill))
			if m.RequiredExperienceMonths > 0 {
				sb.WriteString(fmt.Sprintf(" (%d/%d mo)", m.CandidateExperienceMonths, m.RequiredExperienceMonths))
			}
			if !m.MeetsExperience {
				sb.WriteString(" [short]")
			}
			sb.WriteString("\n")
		}
		if len(outcome.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.MatchedSkills)-maxItemsToShow))
		}
	}

	if len(outcome.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(outcome.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", outcome.MissingSkills[i].RequirementSkill))
		}
		if len(outcome.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.MissingSkills)-maxItemsToShow))
		}
	}

	if len(outcome.ExtraSkills) > 0 {
		extras := strings.Join(outcome.ExtraSkills, ", ")
		if len(extras) > 40 {
			extras = extras[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Extra:      %s\n", extras))
	}

	p.printBox("MATCH OUTCOME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs the ranked comparison for a batch run.
func (p *Printer) PrintComparison(result *types.ComparisonResult) {
	if result == nil || len(result.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates compared: %d  (%d ms)\n\n", len(result.Ranked), result.ProcessingMS))

	for i, outcome := range result.Ranked {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, outcome.ResumeID))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%  (%s)\n", outcome.MatchPercentage, outcome.OverallAssessment))
		sb.WriteString(fmt.Sprintf("    Mandatory matched: %d\n", outcome.MandatoryMatched()))
		if i < len(result.Ranked)-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.AllUniqueSkills) > 0 {
		skills := strings.Join(result.AllUniqueSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nAll skills: %s", skills))
	}

	p.printBox("RANKED COMPARISON", sb.String())
}
