// Package diagram renders classified documents as Mermaid markup, one
// generator per supported format. Generators are stateless; everything
// they emit is ordered deterministically so identical input produces
// byte-identical markup.
package diagram

import (
	"fmt"

	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/domain"
	"github.com/flori950/Architecture-as-Code-Visualizer/pkg/ports"
)

// Registry holds the built-in generators and dispatches documents to
// them by format.
type Registry struct {
	byFormat map[domain.Format]ports.Generator
}

// NewRegistry wires up one generator per supported format.
func NewRegistry() *Registry {
	r := &Registry{byFormat: make(map[domain.Format]ports.Generator)}
	for _, g := range []ports.Generator{
		composeGenerator{},
		kubernetesGenerator{},
		terraformGenerator{},
		cloudFormationGenerator{},
		armGenerator{},
		ibmCloudGenerator{},
	} {
		r.byFormat[g.Format()] = g
	}
	return r
}

// Lookup returns the generator registered for a format.
func (r *Registry) Lookup(f domain.Format) (ports.Generator, bool) {
	g, ok := r.byFormat[f]
	return g, ok
}

// Formats lists the registered formats in presentation order.
func (r *Registry) Formats() []domain.Format {
	var formats []domain.Format
	for _, f := range domain.AllFormats {
		if _, ok := r.byFormat[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}

// Generate renders doc with the generator registered for its format.
// A panic while walking a malformed tree is converted to an error at
// this boundary so a single bad document cannot take down a server
// adapter.
func (r *Registry) Generate(doc *domain.Document) (res *domain.Result, err error) {
	if doc == nil {
		return nil, fmt.Errorf("generate diagram: nil document")
	}
	g, ok := r.byFormat[doc.Format]
	if !ok {
		return nil, fmt.Errorf("generate diagram: %w: %q", domain.ErrUnsupportedFormat, doc.Format)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("generate %s diagram: %v", doc.Format, rec)
		}
	}()

	markup, err := g.Generate(doc)
	if err != nil {
		return nil, fmt.Errorf("generate %s diagram: %w", doc.Format, err)
	}
	return &domain.Result{
		Format:      doc.Format,
		DiagramKind: g.Kind(),
		Markup:      markup,
	}, nil
}
