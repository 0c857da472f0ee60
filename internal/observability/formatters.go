// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/RohanBisht33/trustscan-app/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs the raw classifier outcome.
func (p *Printer) PrintClassification(cls types.Classification) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Label:        %s\n", cls.Label))
	sb.WriteString(fmt.Sprintf("Job score:    %d\n", cls.JobScore))
	sb.WriteString(fmt.Sprintf("Resume score: %d", cls.ResumeScore))
	p.printBox("Classification", sb.String())
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:    %s\n", result.Type))

	switch {
	case result.Job != nil:
		sb.WriteString(fmt.Sprintf("Trust:   %d/100 (%s risk)\n", result.Job.TrustScore, result.Job.RiskLevel))
		appendList(&sb, "Red flags", result.Job.RedFlags)
		appendList(&sb, "Green flags", result.Job.GreenFlags)
	case result.Resume != nil:
		sb.WriteString(fmt.Sprintf("ATS:     %d/100 (%s)\n", result.Resume.ATSScore, result.Resume.SignalLabel))
		sb.WriteString(fmt.Sprintf("Focus:   %s  Tone: %s\n", result.Resume.FocusArea, result.Resume.Tone))
		appendList(&sb, "Highlights", result.Resume.Highlights)
		appendList(&sb, "Badges", result.Resume.Badges)
	}

	sb.WriteString("\n")
	sb.WriteString(result.Summary)
	p.printBox("Analysis", sb.String())
}

// PrintResumeInsights outputs the richer resume-only breakdown.
func (p *Printer) PrintResumeInsights(insights *types.ResumeInsights) {
	if insights == nil {
		p.printBox("Resume Insights", "Not enough text to assess.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:   %d/100 (%s)\n", insights.ATSScore, insights.SignalLabel))
	sb.WriteString(fmt.Sprintf("Focus:   %s  Tone: %s\n", insights.FocusArea, insights.Tone))
	appendList(&sb, "Highlights", insights.Highlights)
	appendList(&sb, "Badges", insights.Badges)
	p.printBox("Resume Insights", strings.TrimRight(sb.String(), "\n"))
}

func appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(title + ":\n")
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		sb.WriteString("  • " + items[i] + "\n")
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
