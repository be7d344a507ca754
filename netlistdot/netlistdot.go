// Package netlistdot renders a finished netlist.Graph as Graphviz DOT, for
// visual inspection of the data-flow structure a Builder/Walker produced.
// It consumes the graph only through its public node/edge iteration.
//
// Grounded on NetlistDot.hpp: one record-shape node per graph node with a
// kind-specific label, one edge per live graph edge labelled
// "symbol[hi:lo]" when the edge carries a symbol, and disabled edges
// rendered dashed rather than omitted.
package netlistdot

import (
	"fmt"
	"strings"

	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/netlist"
)

// Render writes g as a Graphviz digraph to a string.
func Render(g *netlist.Graph) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("  node [shape=record];\n")

	for _, id := range g.IterNodes() {
		node, ok := g.Node(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  N%d [label=\"%s\"]\n", id, nodeLabel(node))
	}

	for _, id := range g.IterNodes() {
		for _, edgeID := range g.OutEdges(id) {
			label, src, dst, ok := g.Edge(edgeID)
			if !ok {
				continue
			}
			attrs := edgeLabel(label)
			if label.Disabled {
				if attrs == "" {
					attrs = "style=dashed"
				} else {
					attrs += ",style=dashed"
				}
			}
			if attrs == "" {
				fmt.Fprintf(&b, "  N%d -> N%d\n", src, dst)
			} else {
				fmt.Fprintf(&b, "  N%d -> N%d [%s]\n", src, dst, attrs)
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// nodeLabel returns the record label for a single node, switching on Kind
// the way the original switches on NodeKind.
func nodeLabel(n netlist.Node) string {
	switch n.Kind {
	case netlist.KindPort:
		name := ""
		if n.Port.Symbol.Internal != nil {
			name = n.Port.Symbol.Internal.Name
		}
		return fmt.Sprintf("%s port %s", directionName(n.Port.Symbol.Dir), name)
	case netlist.KindVariable:
		return fmt.Sprintf("%s[%d:%d]", n.Variable.Symbol.Name, n.Variable.Bounds.Hi, n.Variable.Bounds.Lo)
	case netlist.KindAssignment:
		return "Assignment"
	case netlist.KindConditional:
		return "Conditional"
	case netlist.KindCase:
		return "Case"
	case netlist.KindMerge:
		return "Merge"
	case netlist.KindState:
		return fmt.Sprintf("State %s[%d:%d]", n.State.Symbol.Name, n.State.Bounds.Hi, n.State.Bounds.Lo)
	default:
		return "?"
	}
}

// edgeLabel returns the `label="..."` attribute for an edge, or "" if it
// carries no symbol.
func edgeLabel(l netlist.EdgeLabel) string {
	if l.Symbol == nil {
		return ""
	}
	return fmt.Sprintf("label=\"%s[%d:%d]\"", l.Symbol.Name, l.Bounds.Hi, l.Bounds.Lo)
}

func directionName(d hdlast.Direction) string {
	switch d {
	case hdlast.DirInput:
		return "input"
	case hdlast.DirOutput:
		return "output"
	case hdlast.DirInOut:
		return "inout"
	default:
		return "unknown"
	}
}
