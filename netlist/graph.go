package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/digraph"
	"github.com/jameshanlon/netlistgraph/hdlast"
)

// Graph is the module-level netlist graph: every node and edge a builder
// produces for one elaborated design, addressed by NodeID.
type Graph struct {
	g      *digraph.Graph[Node, EdgeLabel]
	byName map[string]NodeID
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		g:      digraph.New[Node, EdgeLabel](),
		byName: make(map[string]NodeID),
	}
}

func (g *Graph) addNode(n Node, name string) NodeID {
	id := g.g.AddNode(n)
	if name != "" {
		g.byName[name] = id
	}
	return id
}

// AddDependency adds a plain, unlabelled dependency edge from src to dst,
// idempotently (see digraph.Graph.AddEdge).
func (g *Graph) AddDependency(src, dst NodeID) {
	g.g.AddEdge(src, dst, EdgeLabel{})
}

// AddLabelledEdge adds src -> dst labelled with (symbol, bounds).
func (g *Graph) AddLabelledEdge(src, dst NodeID, symbol *hdlast.ValueSymbol, bounds bitrange.Range) {
	g.g.AddEdge(src, dst, EdgeLabel{Symbol: symbol, Bounds: bounds})
}

// Node returns the payload stored at id.
func (g *Graph) Node(id NodeID) (Node, bool) { return g.g.Node(id) }

// Lookup resolves a hierarchical name registered by the builder (ports,
// state elements, named variables) to its node, per §6's
// `lookup(hierarchical-name) -> node-ref?`.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// IterNodes returns every live node id, sorted ascending.
func (g *Graph) IterNodes() []NodeID { return g.g.IterNodes() }

// IterEdges returns every live edge id, sorted ascending.
func (g *Graph) IterEdges() []digraph.EdgeID { return g.g.IterEdges() }

// Edge returns the label, source and target of id.
func (g *Graph) Edge(id digraph.EdgeID) (EdgeLabel, NodeID, NodeID, bool) {
	return g.g.Edge(id)
}

// FindEdge returns the id of the edge src -> dst, if present.
func (g *Graph) FindEdge(src, dst NodeID) (digraph.EdgeID, bool) {
	return g.g.FindEdge(src, dst)
}

// SetEdgeLabel overwrites the label stored at id, e.g. to mark an edge
// Disabled without removing it.
func (g *Graph) SetEdgeLabel(id digraph.EdgeID, label EdgeLabel) error {
	return g.g.SetEdge(id, label)
}

// OutEdges returns the ids of every edge leaving id, sorted.
func (g *Graph) OutEdges(id NodeID) []digraph.EdgeID { return g.g.IterOutEdges(id) }

// InEdges returns the ids of every edge arriving at id, sorted.
func (g *Graph) InEdges(id NodeID) []digraph.EdgeID { return g.g.IterInEdges(id) }

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.g.NodeCount() }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return g.g.EdgeCount() }
