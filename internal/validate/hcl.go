package validate

import (
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// hclDiagnostics runs the real HCL parser over native Terraform source
// and reports its diagnostics as warnings. The regex scanner stays
// authoritative for what reaches the diagram; a full parse failure here
// must not block rendering of whatever the scanner did pick up.
func hclDiagnostics(src string) []domain.Issue {
	parser := hclparse.NewParser()
	_, diags := parser.ParseHCL([]byte(src), "input.tf")

	var issues []domain.Issue
	for _, diag := range diags {
		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		issue := domain.Warnf("hcl: %s", msg)
		if diag.Subject != nil {
			issue.Line = diag.Subject.Start.Line
			issue.Column = diag.Subject.Start.Column
		}
		issues = append(issues, issue)
	}
	return issues
}
