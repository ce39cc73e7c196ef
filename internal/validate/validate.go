// Package validate checks classified documents for structural problems.
// Error-severity issues block diagram generation; warnings ride along
// with the generated result. Checks are per-format and deliberately
// shallow: this is a pre-flight for diagram quality, not a linter.
package validate

import (
	"sort"

	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
)

// Document validates a parsed, classified document.
func Document(doc *domain.Document) domain.Report {
	if !doc.Structured() {
		return domain.NewReport([]domain.Issue{
			domain.Errorf("document is not a structured object"),
		})
	}

	var issues []domain.Issue
	switch doc.Format {
	case domain.FormatDockerCompose:
		issues = compose(doc.Tree)
	case domain.FormatKubernetes:
		issues = kubernetes(doc)
	case domain.FormatTerraform:
		issues = terraform(doc)
	case domain.FormatCloudFormation:
		issues = cloudformation(doc.Tree)
	case domain.FormatAzureARM:
		issues = arm(doc.Tree)
	case domain.FormatIBMCloud:
		issues = ibmcloud(doc.Tree)
	default:
		issues = []domain.Issue{domain.Errorf("unsupported or unrecognized document format")}
	}
	return domain.NewReport(sortStable(issues))
}

func compose(t map[string]any) []domain.Issue {
	var issues []domain.Issue

	services := tree.GetMap(t, "services")
	if len(services) == 0 {
		issues = append(issues, domain.Errorf("docker-compose document must define at least one service"))
		return issues
	}

	for _, name := range tree.Keys(services) {
		svc := tree.AsMap(services[name])
		if svc == nil {
			// A bare `web:` with no body is legal YAML and must not
			// block generation.
			issues = append(issues, domain.Warnf("service %q has a null configuration", name))
			continue
		}
		if !tree.Has(svc, "image") && !tree.Has(svc, "build") {
			issues = append(issues, domain.Warnf("service %q defines neither image nor build", name))
		}
	}
	return issues
}

func kubernetes(doc *domain.Document) []domain.Issue {
	var issues []domain.Issue
	for i, t := range doc.Trees() {
		kind := tree.GetString(t, "kind")
		if kind == "" {
			issues = append(issues, domain.Warnf("document %d has no kind", i+1))
		}
		if tree.GetString(t, "apiVersion") == "" {
			issues = append(issues, domain.Warnf("document %d has no apiVersion", i+1))
		}
		metadata := tree.GetMap(t, "metadata")
		if tree.GetString(metadata, "name") == "" {
			issues = append(issues, domain.Warnf("document %d has no metadata.name", i+1))
		}
	}
	return issues
}

func terraform(doc *domain.Document) []domain.Issue {
	var issues []domain.Issue

	if cfg := doc.Terraform; cfg != nil {
		if len(cfg.Resources)+len(cfg.DataSources) == 0 {
			issues = append(issues, domain.Warnf("configuration declares no resources or data sources"))
		}
		issues = append(issues, hclDiagnostics(doc.Source)...)
		return issues
	}

	t := doc.Tree
	if !tree.Has(t, "resource") && !tree.Has(t, "data") && !tree.Has(t, "module") {
		issues = append(issues, domain.Warnf("configuration declares no resources, data sources or modules"))
	}
	return issues
}

func cloudformation(t map[string]any) []domain.Issue {
	var issues []domain.Issue

	if !tree.Has(t, "Resources") {
		issues = append(issues, domain.Errorf("missing required Resources section"))
		return issues
	}
	resources := tree.GetMap(t, "Resources")
	if len(resources) == 0 {
		issues = append(issues, domain.Warnf("template declares no resources"))
		return issues
	}
	for _, name := range tree.Keys(resources) {
		body := tree.AsMap(resources[name])
		if tree.GetString(body, "Type") == "" {
			issues = append(issues, domain.Warnf("resource %q has no Type", name))
		}
	}
	return issues
}

func arm(t map[string]any) []domain.Issue {
	var issues []domain.Issue

	if !tree.Has(t, "resources") {
		issues = append(issues, domain.Errorf("missing required resources section"))
		return issues
	}
	if !tree.Has(t, "contentVersion") {
		issues = append(issues, domain.Warnf("template has no contentVersion"))
	}
	resources := tree.GetSlice(t, "resources")
	if len(resources) == 0 {
		issues = append(issues, domain.Warnf("template declares no resources"))
		return issues
	}
	for i, r := range resources {
		body := tree.AsMap(r)
		if tree.GetString(body, "type") == "" {
			issues = append(issues, domain.Warnf("resource %d has no type", i))
		}
	}
	return issues
}

func ibmcloud(t map[string]any) []domain.Issue {
	var issues []domain.Issue

	if !tree.Has(t, "resources") && !tree.Has(t, "data_sources") {
		issues = append(issues, domain.Warnf("document defines neither resources nor data_sources"))
		return issues
	}
	for i, r := range tree.GetSlice(t, "resources") {
		body := tree.AsMap(r)
		if tree.GetString(body, "type") == "" {
			issues = append(issues, domain.Warnf("resource %d has no type", i))
		}
	}
	return issues
}

// sortStable orders issues by severity (errors first) while keeping the
// in-severity order the checks produced. Reports read better when the
// blocking problems lead.
func sortStable(issues []domain.Issue) []domain.Issue {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity == domain.SeverityError && issues[j].Severity != domain.SeverityError
	})
	return issues
}
