package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/drivers"
	"github.com/jameshanlon/netlistgraph/hdlast"
)

// regionTracker is a procedural region's driver map: per-symbol bit ranges
// to the node(s) currently driving them, scoped to the region under
// analysis rather than the whole module.
type regionTracker = drivers.Tracker[*hdlast.ValueSymbol, NodeID, hdlast.Expression]

func newRegionTracker() *regionTracker {
	return drivers.New[*hdlast.ValueSymbol, NodeID, hdlast.Expression]()
}

// pendingLvalue is a non-blocking assignment's target, queued until the
// region reaches its fixed point.
type pendingLvalue struct {
	symbol  *hdlast.ValueSymbol
	lsp     hdlast.Expression
	bounds  bitrange.Range
	node    NodeID
	hasNode bool
}

// AnalysisState is the data-flow state threaded through one procedural
// region: its accumulated driver map plus the control-flow cursor (the
// "current" operation node and the enclosing branch node, if any).
//
// Grounded on DataFlowAnalysis.hpp's AnalysisState.
type AnalysisState struct {
	drivers *regionTracker

	node    NodeID
	hasNode bool

	condition    NodeID
	hasCondition bool

	reachable bool
}

func topState() *AnalysisState {
	return &AnalysisState{drivers: newRegionTracker(), reachable: true}
}

func (s *AnalysisState) clone() *AnalysisState {
	return &AnalysisState{
		drivers:      s.drivers.Clone(),
		node:         s.node,
		hasNode:      s.hasNode,
		condition:    s.condition,
		hasCondition: s.hasCondition,
		reachable:    s.reachable,
	}
}

// currentNode returns the node that an lvalue/rvalue reference observed at
// this point in the region should attribute its edges to, falling back to
// external (the caller-supplied root, e.g. a port node) if the region has
// not yet materialised an operation node.
func (s *AnalysisState) currentNode(external NodeID, hasExternal bool) (NodeID, bool) {
	if s.hasNode {
		return s.node, true
	}
	return external, hasExternal
}
