// Package mermaid builds Mermaid graph markup out of nodes, subgraphs
// and typed edges. It is deliberately small: callers decide ordering,
// the builder only guarantees that identical input renders to
// byte-identical output.
package mermaid

import (
	"fmt"
	"strings"
)

// Node is a single node declaration. Label may contain <b> and <br/>
// markup; quotes and raw newlines are escaped at render time.
type Node struct {
	ID    string
	Label string
	Class string
}

// Edge connects two declared node IDs. Solid edges express hard
// dependencies, dotted edges looser associations.
type Edge struct {
	From   string
	To     string
	Label  string
	Dotted bool
}

// Subgraph groups nodes under a titled container.
type Subgraph struct {
	id    string
	title string
	nodes []Node
	owner *Diagram
}

// AddNode declares a node inside the subgraph.
func (s *Subgraph) AddNode(n Node) {
	s.nodes = append(s.nodes, n)
	s.owner.track(n)
}

// Diagram accumulates declarations and renders them in insertion order:
// subgraphs first, then flat nodes, then edges, then the style block.
type Diagram struct {
	header    string
	subgraphs []*Subgraph
	nodes     []Node
	edges     []Edge
	classed   []Node
	seen      map[string]bool
}

// NewFlowchart starts a top-down flowchart diagram.
func NewFlowchart() *Diagram { return newDiagram("flowchart TD") }

// NewGraph starts a top-down graph diagram.
func NewGraph() *Diagram { return newDiagram("graph TD") }

func newDiagram(header string) *Diagram {
	return &Diagram{header: header, seen: make(map[string]bool)}
}

// Subgraph appends a titled container. Containers that end up empty are
// skipped at render time.
func (d *Diagram) Subgraph(id, title string) *Subgraph {
	sg := &Subgraph{id: id, title: title, owner: d}
	d.subgraphs = append(d.subgraphs, sg)
	return sg
}

// AddNode declares a node outside any subgraph.
func (d *Diagram) AddNode(n Node) {
	d.nodes = append(d.nodes, n)
	d.track(n)
}

// AddEdge connects two nodes. The builder does not verify that both
// endpoints were declared; Mermaid renders undeclared endpoints as bare
// boxes, which is sometimes what a generator wants.
func (d *Diagram) AddEdge(e Edge) {
	d.edges = append(d.edges, e)
}

// HasNode reports whether a node with the given ID has been declared,
// in a subgraph or at the top level.
func (d *Diagram) HasNode(id string) bool {
	return d.seen[id]
}

func (d *Diagram) track(n Node) {
	d.seen[n.ID] = true
	if n.Class != "" {
		d.classed = append(d.classed, n)
	}
}

// String renders the accumulated diagram as Mermaid markup.
func (d *Diagram) String() string {
	var sb strings.Builder
	sb.WriteString(d.header)
	sb.WriteString("\n")

	for _, sg := range d.subgraphs {
		if len(sg.nodes) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "    subgraph %s[\"%s\"]\n", sg.id, EscapeLabel(sg.title))
		for _, n := range sg.nodes {
			writeNode(&sb, "        ", n)
		}
		sb.WriteString("    end\n")
	}

	for _, n := range d.nodes {
		writeNode(&sb, "    ", n)
	}

	for _, e := range d.edges {
		arrow := "-->"
		if e.Dotted {
			arrow = "-.->"
		}
		if e.Label != "" {
			arrow = fmt.Sprintf("%s|%s|", arrow, EscapeLabel(e.Label))
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", e.From, arrow, e.To)
	}

	// Fixed palette, so repeated runs over the same input are
	// byte-identical regardless of which classes ended up used.
	sb.WriteString("\n    %% Styles\n")
	for _, sc := range palette {
		fmt.Fprintf(&sb, "    classDef %s %s;\n", sc.name, sc.def)
	}
	for _, n := range d.classed {
		fmt.Fprintf(&sb, "    class %s %s;\n", n.ID, n.Class)
	}

	return sb.String()
}

func writeNode(sb *strings.Builder, indent string, n Node) {
	fmt.Fprintf(sb, "%s%s[\"%s\"]\n", indent, n.ID, EscapeLabel(n.Label))
}
