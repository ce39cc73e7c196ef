// Package report renders analysis outcomes as markdown so the CLI can
// present them through a terminal markdown renderer.
package report

import (
	"fmt"
	"strings"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// Build produces the markdown analysis report for a generated diagram:
// a short summary, any validation findings, and the Mermaid markup in a
// fenced code block ready to paste into any Mermaid-aware viewer.
func Build(res *domain.Result) string {
	var sb strings.Builder
	sb.WriteString("# Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Format:** %s  \n", res.Format))
	sb.WriteString(fmt.Sprintf("**Diagram:** %s\n\n", res.DiagramKind))

	writeIssues(&sb, res.Issues)

	sb.WriteString("## Diagram\n\n")
	sb.WriteString("```mermaid\n")
	sb.WriteString(res.Markup)
	if !strings.HasSuffix(res.Markup, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}

// BuildValidation produces the markdown report for a validation-only
// run, where no diagram is generated.
func BuildValidation(format domain.Format, rep domain.Report) string {
	var sb strings.Builder
	sb.WriteString("# Validation Report\n\n")
	sb.WriteString(fmt.Sprintf("**Format:** %s  \n", format))
	if rep.Valid {
		sb.WriteString("**Result:** valid\n\n")
	} else {
		sb.WriteString("**Result:** invalid\n\n")
	}
	writeIssues(&sb, rep.Issues)
	return sb.String()
}

// IssueLine formats one finding as a single plain-text line, shared by
// the markdown reports and the CLI's non-interactive output.
func IssueLine(issue domain.Issue) string {
	line := fmt.Sprintf("%s %s", marker(issue.Severity), issue.Message)
	if issue.Line > 0 {
		line += fmt.Sprintf(" (line %d)", issue.Line)
	}
	return line
}

func writeIssues(sb *strings.Builder, issues []domain.Issue) {
	if len(issues) == 0 {
		sb.WriteString("No issues found.\n\n")
		return
	}
	sb.WriteString("## Issues\n\n")
	for _, issue := range issues {
		sb.WriteString("- " + IssueLine(issue) + "\n")
	}
	sb.WriteString("\n")
}

func marker(sev domain.Severity) string {
	if sev == domain.SeverityError {
		return "❌"
	}
	return "⚠️"
}
