package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

func TestBuildIncludesDiagramFence(t *testing.T) {
	res := &domain.Result{
		Format:      domain.FormatDockerCompose,
		DiagramKind: domain.KindFlowchart,
		Markup:      "flowchart TD\n    svc_web[\"<b>web</b>\"]\n",
	}

	md := Build(res)
	assert.Contains(t, md, "# Analysis Report")
	assert.Contains(t, md, "**Format:** docker-compose")
	assert.Contains(t, md, "**Diagram:** flowchart")
	assert.Contains(t, md, "No issues found.")
	assert.Contains(t, md, "```mermaid\nflowchart TD\n")
	assert.True(t, strings.HasSuffix(md, "```\n"))
}

func TestBuildClosesFenceWithoutTrailingNewline(t *testing.T) {
	res := &domain.Result{
		Format:      domain.FormatTerraform,
		DiagramKind: domain.KindFlowchart,
		Markup:      "flowchart TD",
	}

	md := Build(res)
	assert.Contains(t, md, "flowchart TD\n```\n")
}

func TestBuildListsIssues(t *testing.T) {
	res := &domain.Result{
		Format:      domain.FormatKubernetes,
		DiagramKind: domain.KindFlowchart,
		Markup:      "flowchart TD\n",
		Issues: []domain.Issue{
			domain.Warnf("document 2 has no kind"),
		},
	}

	md := Build(res)
	assert.Contains(t, md, "## Issues")
	assert.Contains(t, md, "- ⚠️ document 2 has no kind")
}

func TestBuildValidation(t *testing.T) {
	rep := domain.NewReport([]domain.Issue{
		domain.Errorf("services section is empty"),
		domain.Warnf("service web has no image or build"),
	})

	md := BuildValidation(domain.FormatDockerCompose, rep)
	assert.Contains(t, md, "# Validation Report")
	assert.Contains(t, md, "**Result:** invalid")
	assert.Contains(t, md, "- ❌ services section is empty")
	assert.Contains(t, md, "- ⚠️ service web has no image or build")
}

func TestBuildValidationValid(t *testing.T) {
	md := BuildValidation(domain.FormatCloudFormation, domain.NewReport(nil))
	assert.Contains(t, md, "**Result:** valid")
	assert.Contains(t, md, "No issues found.")
}

func TestIssueLinePosition(t *testing.T) {
	issue := domain.Issue{Message: "mapping values are not allowed", Severity: domain.SeverityError, Line: 4}
	assert.Equal(t, "❌ mapping values are not allowed (line 4)", IssueLine(issue))

	plain := domain.Warnf("resource 1 has no type")
	assert.Equal(t, "⚠️ resource 1 has no type", IssueLine(plain))
}
