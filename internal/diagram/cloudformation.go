package diagram

import (
	"github.com/flori950/Architecture-as-Code-Visualizer/internal/tree"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/mermaid"
)

type cloudFormationGenerator struct{}

func (cloudFormationGenerator) Format() domain.Format { return domain.FormatCloudFormation }

func (cloudFormationGenerator) Kind() string { return domain.KindGraph }

func (cloudFormationGenerator) Generate(doc *domain.Document) (string, error) {
	root := doc.Tree
	resources := tree.GetMap(root, "Resources")
	parameters := tree.GetMap(root, "Parameters")

	d := mermaid.NewGraph()

	for _, logicalID := range tree.Keys(resources) {
		body := tree.GetMap(resources, logicalID)
		d.AddNode(mermaid.Node{
			ID:    mermaid.SanitizeID(logicalID),
			Label: labelLines(boldName(logicalID), tree.GetString(body, "Type")),
			Class: classForType(tree.GetString(body, "Type")),
		})
	}

	// Parameters are declared but not wired to the resources that
	// reference them; they render as standalone nodes.
	for _, name := range tree.Keys(parameters) {
		body := tree.GetMap(parameters, name)
		lines := []string{boldName(name), "parameter"}
		if t := tree.GetString(body, "Type"); t != "" {
			lines = append(lines, "type: "+t)
		}
		if def := tree.Scalar(body["Default"]); def != "" {
			lines = append(lines, "default: "+truncate(def))
		}
		d.AddNode(mermaid.Node{
			ID:    "param_" + mermaid.SanitizeID(name),
			Label: labelLines(lines...),
			Class: mermaid.ClassConfig,
		})
	}

	for _, logicalID := range tree.Keys(resources) {
		body := tree.GetMap(resources, logicalID)
		for _, dep := range tree.Strings(body["DependsOn"]) {
			d.AddEdge(mermaid.Edge{
				From:  mermaid.SanitizeID(dep),
				To:    mermaid.SanitizeID(logicalID),
				Label: "depends on",
			})
		}
	}

	return d.String(), nil
}
