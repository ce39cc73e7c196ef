package ports

import "github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"

// Generator renders one document format as Mermaid markup. Generators
// are stateless and safe for concurrent use; a generator only ever sees
// documents already classified as its format.
type Generator interface {
	// Format names the dialect this generator renders.
	Format() domain.Format

	// Kind is the diagram kind consumers should request for the
	// produced markup (domain.KindFlowchart or domain.KindGraph).
	Kind() string

	// Generate renders the document. The markup must be deterministic:
	// the same document yields byte-identical output.
	Generate(doc *domain.Document) (string, error)
}
