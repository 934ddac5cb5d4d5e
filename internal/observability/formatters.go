// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hiremind/internal/workflow"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLines bounds how much of a long report is shown inline
	previewLines = 12
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

// PrintRunSummary outputs a human-readable summary of a finished run.
func (p *Printer) PrintRunSummary(result *workflow.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:  %s\n", result.SessionID))
	if result.Success {
		sb.WriteString("Outcome:  success\n")
	} else {
		sb.WriteString("Outcome:  failed\n")
		sb.WriteString(fmt.Sprintf("Error:    %s\n", truncate(result.Error, boxWidth-14)))
	}
	sb.WriteString(fmt.Sprintf("Stage:    %s\n\n", result.CurrentStage))

	sb.WriteString("Completed stages:\n")
	done := make(map[string]bool, len(result.CompletedStages))
	for _, stage := range result.CompletedStages {
		done[stage] = true
	}
	for _, stage := range workflow.Stages() {
		mark := "✗"
		if done[stage] {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", mark, stage))
	}

	p.printBox("WORKFLOW RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStageOutput outputs a preview of one stage's produced text.
func (p *Printer) PrintStageOutput(stage, output string) {
	if output == "" {
		return
	}

	lines := strings.Split(output, "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], fmt.Sprintf("... (%d more lines)", len(lines)-previewLines))
	}

	p.printBox(strings.ToUpper(strings.ReplaceAll(stage, "_", " ")), strings.Join(lines, "\n"))
}

// PrintProfileSummaries outputs a table of recent profiles.
func (p *Printer) PrintProfileSummaries(summaries []workflow.ProfileSummary) {
	if len(summaries) == 0 {
		p.printBox("HIRING PROFILES", "No profiles found.")
		return
	}

	var sb strings.Builder
	for i, s := range summaries {
		sb.WriteString(fmt.Sprintf("%s\n", s.SessionID))
		sb.WriteString(fmt.Sprintf("  %s / %s\n", truncate(s.RoleTitle, 30), truncate(s.Department, 18)))
		sb.WriteString(fmt.Sprintf("  Status: %s   Created: %s\n", s.Status, s.CreatedAt.Format("2006-01-02")))
		if i < len(summaries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("HIRING PROFILES (%d)", len(summaries)), strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n || n < 4 {
		return s
	}
	return s[:n-3] + "..."
}
