// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/course-builder/internal/types"
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

// PrintCourse outputs a human-readable summary of a course.
func (p *Printer) PrintCourse(course *types.Course) {
	if course == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", course.Title))
	sb.WriteString(fmt.Sprintf("Subject:   %s\n", course.Subject))
	sb.WriteString(fmt.Sprintf("Duration:  %s\n", course.Duration))
	sb.WriteString(fmt.Sprintf("Level:     %s  (%s)\n", course.Level, course.Environment))
	sb.WriteString(fmt.Sprintf("Language:  %s\n", course.Language))
	sb.WriteString(fmt.Sprintf("Status:    %s", course.Status))

	p.printBox("COURSE", sb.String())
}

// PrintPipeline outputs pipeline progress with a simple progress bar.
func (p *Printer) PrintPipeline(pipe *types.Pipeline) {
	if pipe == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status:    %s\n", pipe.Status))
	sb.WriteString(fmt.Sprintf("Step:      %d of %d\n", pipe.CurrentStep, pipe.TotalSteps))

	filled := pipe.ProgressPercent * 20 / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	sb.WriteString(fmt.Sprintf("Progress:  %s %d%%\n", bar, pipe.ProgressPercent))

	if pipe.WaitingForApproval {
		sb.WriteString("Waiting for approval\n")
	}
	if pipe.ErrorMessage != nil && *pipe.ErrorMessage != "" {
		msg := *pipe.ErrorMessage
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Error:     %s\n", msg))
	}

	p.printBox("PIPELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMaterials outputs the per-material status table for a course.
func (p *Printer) PrintMaterials(materials []types.Material) {
	if len(materials) == 0 {
		return
	}

	var sb strings.Builder
	for i, m := range materials {
		marker := " "
		switch {
		case m.ApprovalStatus == types.ApprovalApproved:
			marker = "✓"
		case m.ApprovalStatus == types.ApprovalRejected:
			marker = "✗"
		case m.Status == types.MaterialStatusFailed:
			marker = "!"
		case m.Status == types.MaterialStatusCompleted:
			marker = "?"
		}
		sb.WriteString(fmt.Sprintf("%s %d. %-18s %s", marker, m.StepOrder, m.MaterialType, m.Status))
		if m.Status == types.MaterialStatusCompleted {
			sb.WriteString(fmt.Sprintf(" / %s", m.ApprovalStatus))
		}
		if i < len(materials)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MATERIALS", sb.String())
}

// PrintValidationResult outputs a validation verdict with its findings.
func (p *Printer) PrintValidationResult(res *types.ValidationResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Verdict: %s\n", res.Level))

	if len(res.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		count := min(len(res.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := res.Errors[i]
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
		if len(res.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.Errors)-maxItemsToShow))
		}
	}

	if len(res.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		count := min(len(res.Warnings), maxItemsToShow)
		for i := 0; i < count; i++ {
			msg := res.Warnings[i]
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
		if len(res.Warnings) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(res.Warnings)-maxItemsToShow))
		}
	}

	if res.Metadata.BloomCoveragePercent != nil {
		sb.WriteString(fmt.Sprintf("\nBloom coverage:      %.0f%%", *res.Metadata.BloomCoveragePercent))
	}
	if res.Metadata.MerrillCoveragePercent != nil {
		sb.WriteString(fmt.Sprintf("\nMerrill coverage:    %.0f%%", *res.Metadata.MerrillCoveragePercent))
	}
	if res.Metadata.TerminologyConsistency != nil {
		sb.WriteString(fmt.Sprintf("\nTerminology:         %.0f%%", *res.Metadata.TerminologyConsistency))
	}

	p.printBox("VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
