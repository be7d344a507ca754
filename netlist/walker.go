package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/lsp"
)

// Walker traverses an elaborated design's module/instance tree and drives a
// Builder and a fresh DFA per procedural region to assemble the netlist
// graph.
//
// Grounded on NetlistVisitor.hpp/.cpp, whose per-member dispatch this
// mirrors member-kind for member-kind.
type Walker struct {
	cfg     Config
	builder *Builder
	ctx     hdlast.EvalContext
}

// NewWalker constructs a Walker that builds into a fresh Builder using ctx
// to resolve constant conditions and LSP bounds.
func NewWalker(ctx hdlast.EvalContext, cfg Config) *Walker {
	return &Walker{cfg: cfg, builder: NewBuilder(cfg), ctx: ctx}
}

// Builder returns the Walker's underlying Builder.
func (w *Walker) Builder() *Builder { return w.builder }

// WalkDesign walks every instance reachable from the design's top instance
// and finalises the builder's pending R-value queue.
func (w *Walker) WalkDesign(d *hdlast.Design) *Graph {
	w.walkInstance(d.Top)
	w.builder.Finalize()
	return w.builder.Graph()
}

func (w *Walker) walkInstance(inst *hdlast.Instance) {
	if inst.Uninstantiated || inst.Module == nil {
		return
	}
	for _, port := range inst.Module.Ports {
		w.handlePort(port)
	}
	for _, member := range inst.Module.Members {
		w.walkMember(member)
	}
}

func (w *Walker) walkMember(member hdlast.ModuleMember) {
	switch m := member.(type) {
	case *hdlast.ProceduralBlock:
		w.handleProceduralBlock(m)
	case *hdlast.ContinuousAssign:
		w.handleContinuousAssign(m)
	case *hdlast.Instance:
		w.walkInstance(m)
		for _, conn := range m.Connections {
			w.handlePortConnection(conn)
		}
	case *hdlast.VariableDecl:
		if m.InterfaceBody {
			w.handleInterfaceVariable(m.Symbol)
		}
	case *hdlast.GenerateBlock:
		if !m.Instantiated {
			return
		}
		for _, inner := range m.Members {
			w.walkMember(inner)
		}
	}
}

// handlePort creates the Port node for port's full bit range and, for an
// input or inout, records it as the external driver of the internal value
// it connects to; an output's driver is hooked up later as the procedural
// analysis of the body discovers it (see Builder.HookupOutputPort).
func (w *Walker) handlePort(port *hdlast.PortSymbol) {
	if port.Internal == nil {
		return
	}
	bounds := port.Internal.Bounds()
	id := w.builder.CreatePort(port, bounds)

	if port.IsInput() {
		w.builder.AddDriver(any(port.Internal), nil, bounds, id)
	}
	w.builder.AddDriver(any(port), nil, bounds, id)
}

// handleInterfaceVariable creates a Variable node standing for an
// interface-body value so that modport-mediated references through it have
// somewhere to resolve to.
func (w *Walker) handleInterfaceVariable(symbol *hdlast.ValueSymbol) {
	bounds := symbol.Bounds()
	id := w.builder.CreateVariable(symbol, bounds)
	w.builder.AddDriver(any(symbol), nil, bounds, id)
}

// handleProceduralBlock runs a fresh DFA over block's body and folds the
// resulting region driver map into module-level state, unless the block's
// body is solely a concurrent assertion (which drives nothing).
func (w *Walker) handleProceduralBlock(block *hdlast.ProceduralBlock) {
	if hdlast.IsSoleConcurrentAssertion(block.Body) {
		return
	}

	dfa := NewDFA(w.builder, w.ctx, w.cfg)
	dfa.Run(block.Body, 0, false)
	dfa.Finalize()

	edgeKind := determineEdgeKind(block)
	w.builder.MergeProceduralDrivers(w.ctx, dfa.State().drivers, edgeKind)
}

// handleContinuousAssign runs the same assignment transfer rule a blocking
// procedural assignment would, over a synthetic expression statement, then
// merges its (always combinational) region drivers into module-level state.
func (w *Walker) handleContinuousAssign(assign *hdlast.ContinuousAssign) {
	expr := &hdlast.AssignmentExpr{LHS: assign.LHS, RHS: assign.RHS, Blocking: true}

	dfa := NewDFA(w.builder, w.ctx, w.cfg)
	dfa.RunExpr(expr, 0, false)
	dfa.Finalize()

	w.builder.MergeProceduralDrivers(w.ctx, dfa.State().drivers, hdlast.EdgeNone)
}

// handlePortConnection wires an instance's port connection expression to
// the instance's own Port node. An input port's connection is an R-value
// in the instantiating scope: it is queued as a pending R-value of the
// Port node exactly like any other reference, so it resolves once every
// instance in the design (including ones appearing later, as in a
// combinational loop between two instances) has contributed its drivers.
// An output port's connection is an L-value: the Port node becomes an
// additional driver of it immediately.
func (w *Walker) handlePortConnection(conn hdlast.PortConnection) {
	bounds := conn.Port.Internal.Bounds()
	portNodes := w.builder.PortNodes(conn.Port.Internal, bounds)
	if len(portNodes) == 0 {
		return
	}

	sink := &portConnSink{walker: w, port: conn.Port, portNode: portNodes[0]}
	lsp.Extract(conn.Expr, w.ctx, !conn.Port.IsInput(), sink)
}

type portConnSink struct {
	walker   *Walker
	port     *hdlast.PortSymbol
	portNode NodeID
}

func (s *portConnSink) OnReference(symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, bounds bitrange.Range, isLValue bool) {
	if s.port.IsInput() {
		s.walker.builder.AddRvalue(s.walker.ctx, symbol, lspExpr, bounds, s.portNode, true)
		return
	}
	s.walker.builder.MergeDriver(any(symbol), lspExpr, bounds, s.portNode)
}

// determineEdgeKind derives the clock-edge sensitivity a procedural block's
// driven symbols should be attributed to, regardless of the always-
// construct keyword. A single signal with an explicit edge is clocked; an
// event list is clocked only if every event in it carries an explicit
// edge — one edge-less event (e.g. `@(posedge clk or data)`) makes the
// whole block combinational.
func determineEdgeKind(block *hdlast.ProceduralBlock) hdlast.EdgeKind {
	switch t := block.Timing.(type) {
	case *hdlast.SignalEventControl:
		if t.Edge != hdlast.EdgeNone {
			return t.Edge
		}
	case *hdlast.EventListControl:
		result := hdlast.EdgeNone
		for _, e := range t.Events {
			if e.Edge == hdlast.EdgeNone {
				return hdlast.EdgeNone
			}
			result = e.Edge
		}
		return result
	}
	return hdlast.EdgeNone
}
