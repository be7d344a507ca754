// Package netlist assembles the directed, data-flow graph of an elaborated
// design: one node per port, variable, assignment, conditional, case,
// confluence merge and clocked state element, with edges labelled by the
// (symbol, bit-range) a value flows through.
//
// Grounded on NetlistNode.hpp/NetlistEdge.hpp (node-kind enum and per-kind
// payload), generalized from the source's inheritance hierarchy into a
// tagged-variant struct instead of a class hierarchy with a downcast
// helper.
package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/digraph"
	"github.com/jameshanlon/netlistgraph/hdlast"
)

// NodeID identifies a node within a Graph.
type NodeID = digraph.NodeID

// NodeKind discriminates which payload field of a Node is populated.
type NodeKind int

const (
	KindPort NodeKind = iota
	KindVariable
	KindAssignment
	KindConditional
	KindCase
	KindMerge
	KindState
)

func (k NodeKind) String() string {
	switch k {
	case KindPort:
		return "port"
	case KindVariable:
		return "variable"
	case KindAssignment:
		return "assignment"
	case KindConditional:
		return "conditional"
	case KindCase:
		return "case"
	case KindMerge:
		return "merge"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// PortPayload is a Port node: a module port. The walker materialises one
// Port node per port, spanning the full bit range of the port's internal
// value; ports are not split into per-driven-range nodes.
type PortPayload struct {
	Symbol *hdlast.PortSymbol
	Bounds bitrange.Range
}

// VariablePayload is a Variable node: an interface-body variable reference.
type VariablePayload struct {
	Symbol *hdlast.ValueSymbol
	Bounds bitrange.Range
}

// AssignmentPayload is an Assignment node: one procedural or continuous
// assignment statement.
type AssignmentPayload struct {
	Expr *hdlast.AssignmentExpr
}

// ConditionalPayload is a Conditional node: an `if`/`else` whose guard is
// not a compile-time constant.
type ConditionalPayload struct {
	Stmt *hdlast.ConditionalStatement
}

// CasePayload is a Case node: a `case` statement.
type CasePayload struct {
	Stmt *hdlast.CaseStatement
}

// MergePayload is a Merge node: materialised where two branches supply
// distinct drivers for the same bit range of the same symbol, and where two
// branches end on different current operation or condition nodes. It carries
// no data of its own; its identity and incoming edges are the payload.
type MergePayload struct{}

// StatePayload is a State node: the clocked storage element materialised
// for a symbol driven from within a clocked procedural block.
type StatePayload struct {
	Symbol *hdlast.ValueSymbol
	Bounds bitrange.Range
}

// Node is the tagged-variant payload stored at every netlist graph vertex.
// Exactly one of the payload fields matching Kind is non-nil; callers
// switch on Kind rather than type-asserting a payload interface.
type Node struct {
	Kind NodeKind

	Port        *PortPayload
	Variable    *VariablePayload
	Assignment  *AssignmentPayload
	Conditional *ConditionalPayload
	Case        *CasePayload
	Merge       *MergePayload
	State       *StatePayload
}

func portNode(p *PortPayload) Node        { return Node{Kind: KindPort, Port: p} }
func variableNode(p *VariablePayload) Node { return Node{Kind: KindVariable, Variable: p} }
func assignmentNode(p *AssignmentPayload) Node {
	return Node{Kind: KindAssignment, Assignment: p}
}
func conditionalNode(p *ConditionalPayload) Node {
	return Node{Kind: KindConditional, Conditional: p}
}
func caseNode(p *CasePayload) Node   { return Node{Kind: KindCase, Case: p} }
func mergeNode() Node                { return Node{Kind: KindMerge, Merge: &MergePayload{}} }
func stateNode(p *StatePayload) Node { return Node{Kind: KindState, State: p} }

// EdgeLabel is the payload carried by every netlist graph edge: the
// (symbol, bit-range) the value flows through, and whether the edge has
// been disabled (reserved for consumers that prune edges without removing
// them, mirroring the original's NetlistEdge::disable()).
type EdgeLabel struct {
	Symbol   *hdlast.ValueSymbol
	Bounds   bitrange.Range
	Disabled bool
}
