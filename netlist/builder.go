package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/drivers"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/lsp"
)

// pendingRvalue is an R-value whose drivers could not be resolved from its
// own region's driver map; it is queued until every region's drivers have
// been merged into the module-level map.
type pendingRvalue struct {
	symbol *hdlast.ValueSymbol
	lsp    hdlast.Expression
	bounds bitrange.Range
	node   NodeID
}

type portNodeEntry struct {
	bounds bitrange.Range
	node   NodeID
}

// Builder assembles the module-level netlist graph: it owns the graph, the
// module-level driver map (keyed by either a *hdlast.ValueSymbol or a
// *hdlast.PortSymbol, mirroring the original's common ast::Symbol key), and
// the pending-rvalue queue drained once every region has run.
//
// Grounded on NetlistBuilder.hpp/.cpp.
type Builder struct {
	cfg   Config
	graph *Graph

	driverMap *drivers.Tracker[any, NodeID, hdlast.Expression]

	pendingRvalues []pendingRvalue

	portNodesBySymbol map[*hdlast.ValueSymbol][]portNodeEntry
}

// NewBuilder constructs an empty Builder.
func NewBuilder(cfg Config) *Builder {
	return &Builder{
		cfg:               cfg,
		graph:             NewGraph(),
		driverMap:         drivers.New[any, NodeID, hdlast.Expression](),
		portNodesBySymbol: make(map[*hdlast.ValueSymbol][]portNodeEntry),
	}
}

// Graph returns the netlist graph under construction.
func (b *Builder) Graph() *Graph { return b.graph }

func (b *Builder) CreateAssignment(expr *hdlast.AssignmentExpr) NodeID {
	return b.graph.addNode(assignmentNode(&AssignmentPayload{Expr: expr}), "")
}

func (b *Builder) CreateConditional(stmt *hdlast.ConditionalStatement) NodeID {
	return b.graph.addNode(conditionalNode(&ConditionalPayload{Stmt: stmt}), "")
}

func (b *Builder) CreateCase(stmt *hdlast.CaseStatement) NodeID {
	return b.graph.addNode(caseNode(&CasePayload{Stmt: stmt}), "")
}

// CreateVariable creates a Variable node for an interface-body value
// reference, registered under the symbol's hierarchical name for Lookup.
func (b *Builder) CreateVariable(symbol *hdlast.ValueSymbol, bounds bitrange.Range) NodeID {
	return b.graph.addNode(variableNode(&VariablePayload{Symbol: symbol, Bounds: bounds}), symbol.String())
}

// Merge returns the confluence node for a and c: a and c directly if they
// already denote the same node, otherwise a fresh Merge node with edges
// drawn from both.
func (b *Builder) Merge(a, c NodeID) NodeID {
	if a == c {
		return a
	}
	m := b.graph.addNode(mergeNode(), "")
	b.graph.AddDependency(a, m)
	b.graph.AddDependency(c, m)
	return m
}

// AddDependency adds a plain, unlabelled edge from src to dst.
func (b *Builder) AddDependency(src, dst NodeID) {
	b.graph.AddDependency(src, dst)
}

// AddDriversToNode edges every driver in driverList into target, labelled
// with (symbol, bounds).
func (b *Builder) AddDriversToNode(driverList drivers.List[NodeID, hdlast.Expression], target NodeID, symbol *hdlast.ValueSymbol, bounds bitrange.Range) {
	for _, d := range driverList {
		b.graph.AddLabelledEdge(d.Node, target, symbol, bounds)
	}
}

// AddRvalue enqueues symbol/bounds as a pending R-value of node, resolved
// once module-level drivers exist for every region — except a reference
// through a modport port, which is not queued: it is handed to
// resolveInterfaceReferences, which chases its connection expression but
// adds no edge or pending R-value for the interface variable it reaches.
func (b *Builder) AddRvalue(evalCtx hdlast.EvalContext, symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, bounds bitrange.Range, node NodeID, hasNode bool) {
	if symbol.Kind == hdlast.KindModportPort {
		b.resolveInterfaceReferences(evalCtx, symbol, lspExpr, node, hasNode)
		return
	}
	if !hasNode {
		return
	}
	b.cfg.debugf("adding pending rvalue %s%s", symbol, bounds)
	b.pendingRvalues = append(b.pendingRvalues, pendingRvalue{symbol, lspExpr, bounds, node})
}

// ProcessPendingRvalues resolves every queued pending R-value against the
// module-level driver map, drawing labelled edges from each driver into
// the R-value's node. Must run only after every region's drivers have been
// merged in.
func (b *Builder) ProcessPendingRvalues() {
	for _, p := range b.pendingRvalues {
		for _, d := range b.driverMap.Get(any(p.symbol), p.bounds) {
			b.graph.AddLabelledEdge(d.Node, p.node, p.symbol, p.bounds)
		}
	}
	b.pendingRvalues = nil
}

// Finalize drains the pending R-value queue. Call once after the whole
// design has been walked.
func (b *Builder) Finalize() {
	b.ProcessPendingRvalues()
}

// CreatePort creates a Port node for the driven range of port's internal
// value, registered under the internal symbol's hierarchical name (falling
// back to the port's own name) for Lookup, and records it so later
// port-connection handling and driver merges can find it again.
func (b *Builder) CreatePort(port *hdlast.PortSymbol, bounds bitrange.Range) NodeID {
	name := port.Name
	if port.Internal != nil {
		name = port.Internal.String()
	}
	id := b.graph.addNode(portNode(&PortPayload{Symbol: port, Bounds: bounds}), name)
	if port.Internal != nil {
		b.portNodesBySymbol[port.Internal] = append(b.portNodesBySymbol[port.Internal], portNodeEntry{bounds, id})
	}
	return id
}

// PortNodes returns the Port nodes already created for symbol whose range
// overlaps bounds.
func (b *Builder) PortNodes(symbol *hdlast.ValueSymbol, bounds bitrange.Range) []NodeID {
	var out []NodeID
	for _, e := range b.portNodesBySymbol[symbol] {
		if e.bounds.Overlaps(bounds) {
			out = append(out, e.node)
		}
	}
	return out
}

// AddDriver installs node as the sole driver of symbol's bounds in the
// module-level driver map, overwriting any existing driver there. symbol
// is either a *hdlast.ValueSymbol or a *hdlast.PortSymbol.
func (b *Builder) AddDriver(symbol any, lspExpr hdlast.Expression, bounds bitrange.Range, node NodeID) {
	b.driverMap.Add(symbol, lspExpr, bounds, node)
}

// MergeDriver adds node as an additional driver of symbol's bounds in the
// module-level driver map.
func (b *Builder) MergeDriver(symbol any, lspExpr hdlast.Expression, bounds bitrange.Range, node NodeID) {
	b.driverMap.Merge(symbol, lspExpr, bounds, node)
}

// GetDrivers returns the module-level drivers of symbol's bounds.
func (b *Builder) GetDrivers(symbol any, bounds bitrange.Range) drivers.List[NodeID, hdlast.Expression] {
	return b.driverMap.Get(symbol, bounds)
}

// HookupOutputPort draws an edge from each entry in driverList to the Port
// node registered for symbol's output-port back-reference and bounds, if
// any. A symbol with more than one port back-reference is currently
// unsupported and is skipped with a debug trace.
func (b *Builder) HookupOutputPort(symbol *hdlast.ValueSymbol, bounds bitrange.Range, driverList drivers.List[NodeID, hdlast.Expression]) {
	if len(symbol.PortBackrefs) == 0 {
		return
	}
	if len(symbol.PortBackrefs) > 1 {
		b.cfg.debugf("ignoring symbol %s with multiple port back-references", symbol)
		return
	}
	portSymbol := symbol.PortBackrefs[0]
	for _, driver := range driverList {
		for _, portDriver := range b.GetDrivers(any(portSymbol), bounds) {
			b.graph.AddLabelledEdge(driver.Node, portDriver.Node, symbol, bounds)
		}
	}
}

// MergeProceduralDrivers folds a completed region's driver map into the
// module-level map. A combinational edge (hdlast.EdgeNone) merges each
// interval's drivers directly; any other edge kind materialises a State
// node fed by the region's drivers and installs it as the sole
// module-level driver for that range.
func (b *Builder) MergeProceduralDrivers(evalCtx hdlast.EvalContext, region *regionTracker, edgeKind hdlast.EdgeKind) {
	region.ForEachSymbol(func(symbol *hdlast.ValueSymbol, intervals []drivers.IntervalEntry[NodeID, hdlast.Expression]) {
		for _, interval := range intervals {
			if edgeKind == hdlast.EdgeNone {
				b.driverMap.MergeList(any(symbol), interval.Range, interval.Drivers)
				b.HookupOutputPort(symbol, interval.Range, interval.Drivers)
			} else {
				stateID := b.graph.addNode(stateNode(&StatePayload{Symbol: symbol, Bounds: interval.Range}), symbol.String())
				for _, d := range interval.Drivers {
					b.graph.AddLabelledEdge(d.Node, stateID, symbol, interval.Range)
				}
				b.driverMap.Add(any(symbol), nil, interval.Range, stateID)
				b.HookupOutputPort(symbol, interval.Range, drivers.List[NodeID, hdlast.Expression]{{Node: stateID}})
			}

			if symbol.Kind == hdlast.KindModportPort {
				for _, d := range interval.Drivers {
					b.resolveInterfaceReferences(evalCtx, symbol, d.LSP, d.Node, true)
				}
			}
		}
	})
}

// resolveInterfaceReferences translates a reference through a modport port
// into its underlying interface variable(s) by chasing the modport's
// connection expression, applying any outer select the original reference
// carried. Recurses through nested modport connections.
//
// As in the original's NetlistBuilder::_resolveInterfaceRef, reaching a
// plain interface variable only identifies it; no further graph action is
// taken for it here (see interfaceRefSink).
func (b *Builder) resolveInterfaceReferences(evalCtx hdlast.EvalContext, symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, node NodeID, hasNode bool) {
	ref := symbol.ModportRef
	if ref == nil || ref.Connection == nil {
		return
	}
	conn := applyOuterSelect(ref.Connection, lspExpr)
	sink := &interfaceRefSink{builder: b, evalCtx: evalCtx, node: node, hasNode: hasNode}
	lsp.Extract(conn, evalCtx, false, sink)
}

type interfaceRefSink struct {
	builder *Builder
	evalCtx hdlast.EvalContext
	node    NodeID
	hasNode bool
}

func (s *interfaceRefSink) OnReference(symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, _ bitrange.Range, _ bool) {
	if symbol.Kind == hdlast.KindModportPort {
		s.builder.resolveInterfaceReferences(s.evalCtx, symbol, lspExpr, s.node, s.hasNode)
	}
}

// applyOuterSelect rebuilds the outer select/member-access that lspExpr
// applied on top of whatever it selected from, with conn substituted as the
// new base — translating a selected reference through a modport port into
// the equivalent selected reference through its connection expression.
func applyOuterSelect(conn hdlast.Expression, lspExpr hdlast.Expression) hdlast.Expression {
	switch e := lspExpr.(type) {
	case *hdlast.ElementSelectExpr:
		return &hdlast.ElementSelectExpr{Range: e.Range, Value: conn, Selector: e.Selector}
	case *hdlast.RangeSelectExpr:
		return &hdlast.RangeSelectExpr{Range: e.Range, Value: conn, Left: e.Left, Right: e.Right}
	case *hdlast.MemberAccessExpr:
		return &hdlast.MemberAccessExpr{RangeVal: e.RangeVal, Base: conn, Member: e.Member, Kind: e.Kind}
	default:
		return conn
	}
}
