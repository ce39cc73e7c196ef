package domain

// Diagram kinds signal the rendering mode a consumer should request
// from its Mermaid renderer. Grouped diagrams use flowchart, flat
// resource lists use graph.
const (
	KindFlowchart = "flowchart"
	KindGraph     = "graph"
)

// Result is the outcome of a successful generation run.
type Result struct {
	Format      Format  `json:"format"`
	DiagramKind string  `json:"diagramKind"`
	Markup      string  `json:"markup"`
	Issues      []Issue `json:"issues,omitempty"`
}
