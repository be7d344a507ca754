package netlist

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/drivers"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/lsp"
)

// DFA is the forward data-flow analysis run once per procedural region (a
// procedural block body or a continuous assignment): it walks structured
// control flow, maintains a per-region driver map, and emits the
// Assignment/Conditional/Case/Merge nodes and edges that region
// contributes to the netlist graph.
//
// Grounded on DataFlowAnalysis.hpp/.cpp and ProceduralAnalysis.hpp.
type DFA struct {
	builder *Builder
	ctx     hdlast.EvalContext
	cfg     Config

	state *AnalysisState

	external    NodeID
	hasExternal bool

	isBlocking     bool
	prohibitLValue bool

	pendingLvalues []pendingLvalue
}

// NewDFA constructs a DFA over builder's graph, using ctx to resolve
// constant selectors/guards and LSP bounds.
func NewDFA(builder *Builder, ctx hdlast.EvalContext, cfg Config) *DFA {
	return &DFA{builder: builder, ctx: ctx, cfg: cfg}
}

// State returns the region's final analysis state after Run/Finalize.
func (d *DFA) State() *AnalysisState { return d.state }

// Run analyses stmt from the top state. external/hasExternal seed the
// "current node" an lvalue/rvalue reference attributes its edges to before
// the region has materialised any operation node of its own (e.g. a port
// node created by the caller).
func (d *DFA) Run(stmt hdlast.Statement, external NodeID, hasExternal bool) {
	d.state = topState()
	d.external, d.hasExternal = external, hasExternal
	d.visitStmt(stmt)
}

// RunExpr analyses a single expression (used for continuous assignments,
// which have no enclosing statement in this AST model).
func (d *DFA) RunExpr(expr hdlast.Expression, external NodeID, hasExternal bool) {
	d.state = topState()
	d.external, d.hasExternal = external, hasExternal
	d.visitExpr(expr)
}

// Finalize drains the region's pending non-blocking L-value queue into the
// final state, applying tracker.Add for each recorded tuple — the
// end-of-block update semantics of non-blocking assignments.
func (d *DFA) Finalize() {
	for _, p := range d.pendingLvalues {
		d.state.drivers.Add(p.symbol, p.lsp, p.bounds, p.node)
	}
	d.pendingLvalues = nil
}

func (d *DFA) visitStmt(stmt hdlast.Statement) {
	if stmt == nil || !d.state.reachable {
		return
	}
	switch s := stmt.(type) {
	case *hdlast.Block:
		for _, inner := range s.Stmts {
			d.visitStmt(inner)
		}
	case *hdlast.ExpressionStatement:
		d.visitExpr(s.Expr)
	case *hdlast.ConditionalStatement:
		d.handleConditional(s)
	case *hdlast.CaseStatement:
		d.handleCase(s)
	case *hdlast.ProceduralForceStatement:
		d.handleForce(s)
	case *hdlast.LoopStatement:
		d.handleLoop(s)
	case *hdlast.ConcurrentAssertionStatement:
		// Drives nothing.
	}
}

func (d *DFA) visitExpr(expr hdlast.Expression) {
	if expr == nil {
		return
	}
	if assign, ok := expr.(*hdlast.AssignmentExpr); ok {
		d.handleAssignment(assign)
		return
	}
	lsp.Extract(expr, d.ctx, false, dfaSink{d})
}

// dfaSink adapts the DFA's handle-lvalue/handle-rvalue rules to lsp.Extract's
// EventSink interface.
type dfaSink struct{ d *DFA }

func (s dfaSink) OnReference(symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, bounds bitrange.Range, isLValue bool) {
	if !s.d.state.reachable {
		return
	}
	if isLValue {
		s.d.handleLvalue(symbol, lspExpr, bounds)
	} else {
		s.d.handleRvalue(symbol, lspExpr, bounds)
	}
}

func (d *DFA) handleAssignment(expr *hdlast.AssignmentExpr) {
	node := d.builder.CreateAssignment(expr)
	d.updateNode(node, false)

	if !d.prohibitLValue {
		d.isBlocking = expr.Blocking
		lsp.Extract(expr.LHS, d.ctx, true, dfaSink{d})
	} else {
		// Procedural force: the target is not attributed as a driver, but
		// still walked (as an rvalue) for any rvalues it contains, e.g. an
		// index expression.
		lsp.Extract(expr.LHS, d.ctx, false, dfaSink{d})
	}

	if !expr.IsLValueArg {
		lsp.Extract(expr.RHS, d.ctx, false, dfaSink{d})
	}
}

func (d *DFA) handleForce(stmt *hdlast.ProceduralForceStatement) {
	if stmt.IsForce {
		saved := d.prohibitLValue
		d.prohibitLValue = true
		d.visitStmt(stmt.Inner)
		d.prohibitLValue = saved
	} else {
		d.visitStmt(stmt.Inner)
	}
}

// updateNode installs node as the region's current operation node, edging
// it from the enclosing condition node (if any); if conditional, node also
// becomes the new condition for statements nested beneath it.
func (d *DFA) updateNode(node NodeID, conditional bool) {
	if d.state.hasCondition {
		d.builder.AddDependency(d.state.condition, node)
	}
	if conditional {
		d.state.condition, d.state.hasCondition = node, true
	} else {
		d.state.hasCondition = false
	}
	d.state.node, d.state.hasNode = node, true
}

func (d *DFA) handleLvalue(symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, bounds bitrange.Range) {
	node, hasNode := d.state.currentNode(d.external, d.hasExternal)
	if !hasNode {
		return
	}
	if !d.isBlocking {
		d.pendingLvalues = append(d.pendingLvalues, pendingLvalue{symbol, lspExpr, bounds, node, true})
		return
	}
	d.state.drivers.Add(symbol, lspExpr, bounds, node)
}

func (d *DFA) handleRvalue(symbol *hdlast.ValueSymbol, lspExpr hdlast.Expression, bounds bitrange.Range) {
	node, hasNode := d.state.currentNode(d.external, d.hasExternal)

	if driverList := d.state.drivers.Get(symbol, bounds); len(driverList) > 0 && hasNode {
		d.builder.AddDriversToNode(driverList, node, symbol, bounds)
	}

	for _, residual := range d.state.drivers.Residual(symbol, bounds) {
		d.builder.AddRvalue(d.ctx, symbol, lspExpr, residual, node, hasNode)
	}
}

func (d *DFA) handleConditional(stmt *hdlast.ConditionalStatement) {
	if d.allConditionsConstant(stmt) {
		for _, branch := range stmt.Branches {
			if branch.Condition == nil {
				d.visitStmt(branch.Body)
				return
			}
			if v, ok := d.ctx.ConstantBool(branch.Condition); ok && v {
				d.visitStmt(branch.Body)
				return
			}
		}
		return
	}

	node := d.builder.CreateConditional(stmt)
	d.updateNode(node, true)

	for _, branch := range stmt.Branches {
		if branch.Condition != nil {
			d.visitExpr(branch.Condition)
		}
	}

	base := d.state
	var results []*AnalysisState
	sawElse := false
	for _, branch := range stmt.Branches {
		if branch.Condition == nil {
			sawElse = true
		} else if v, ok := d.ctx.ConstantBool(branch.Condition); ok && !v {
			// A constant-false guard makes its branch unreachable.
			continue
		}
		d.state = base.clone()
		d.visitStmt(branch.Body)
		results = append(results, d.state)
	}
	if !sawElse {
		results = append(results, base.clone())
	}

	d.state = d.joinAll(results)
}

func (d *DFA) allConditionsConstant(stmt *hdlast.ConditionalStatement) bool {
	for _, branch := range stmt.Branches {
		if branch.Condition == nil {
			continue
		}
		if _, ok := d.ctx.ConstantBool(branch.Condition); !ok {
			return false
		}
	}
	return true
}

func (d *DFA) handleCase(stmt *hdlast.CaseStatement) {
	node := d.builder.CreateCase(stmt)
	d.updateNode(node, true)

	d.visitExpr(stmt.Selector)
	for _, arm := range stmt.Arms {
		for _, label := range arm.Labels {
			d.visitExpr(label)
		}
	}

	base := d.state
	var results []*AnalysisState
	sawDefault := false
	for _, arm := range stmt.Arms {
		if len(arm.Labels) == 0 {
			sawDefault = true
		}
		d.state = base.clone()
		d.visitStmt(arm.Body)
		results = append(results, d.state)
	}
	if !sawDefault {
		results = append(results, base.clone())
	}

	d.state = d.joinAll(results)
}

// handleLoop analyses Body once, then joins the pre-loop state with the
// post-body state, modelling zero-or-one iterations. A genuine
// iterate-to-fixpoint solver over an arbitrary control-flow graph (loop
// bodies that read a driver set up by a prior iteration of the same loop)
// is not implemented; see DESIGN.md's Open Question decision on loops.
func (d *DFA) handleLoop(stmt *hdlast.LoopStatement) {
	d.visitStmt(stmt.Init)

	pre := d.state.clone()
	d.visitStmt(stmt.Body)
	d.visitStmt(stmt.Step)
	d.state = d.join(pre, d.state)
}

// join computes the confluence of mutually-exclusive branches:
// union both sides' driver maps when both are reachable,
// collapsing same-range conflicts into a Merge node; adopt the reachable
// side verbatim when only one is.
func (d *DFA) join(a, b *AnalysisState) *AnalysisState {
	if a.reachable == b.reachable {
		return d.mergeStates(a, b)
	}
	if !a.reachable {
		return b.clone()
	}
	return a.clone()
}

func (d *DFA) joinAll(states []*AnalysisState) *AnalysisState {
	result := states[0]
	for _, s := range states[1:] {
		result = d.join(result, s)
	}
	return result
}

// mergeStates unions a and b's driver maps and control-flow cursors. Any
// bit range that ends up with more than one distinct driver as a result is
// collapsed into a single Merge node (see collapseDriverConflicts) and
// installed as that range's sole driver.
func (d *DFA) mergeStates(a, b *AnalysisState) *AnalysisState {
	result := a.clone()

	b.drivers.ForEachSymbol(func(symbol *hdlast.ValueSymbol, intervals []drivers.IntervalEntry[NodeID, hdlast.Expression]) {
		for _, interval := range intervals {
			result.drivers.MergeList(symbol, interval.Range, interval.Drivers)
		}
	})

	d.collapseDriverConflicts(result.drivers)

	result.node, result.hasNode = d.mergeNodes(a.node, a.hasNode, b.node, b.hasNode)
	result.condition, result.hasCondition = d.mergeNodes(a.condition, a.hasCondition, b.condition, b.hasCondition)
	result.reachable = a.reachable
	return result
}

func (d *DFA) mergeNodes(a NodeID, hasA bool, b NodeID, hasB bool) (NodeID, bool) {
	switch {
	case hasA && hasB:
		return d.builder.Merge(a, b), true
	case hasA:
		return a, true
	case hasB:
		return b, true
	default:
		return 0, false
	}
}

type driverConflict struct {
	symbol *hdlast.ValueSymbol
	r      bitrange.Range
	nodes  []NodeID
}

// collapseDriverConflicts finds every interval left with more than one
// distinct driver node by a raw union merge and replaces its driver list
// with a single Merge node fed from every one of them. Since a region's
// driver map only ever accumulates multiple drivers per bit range through
// this exact union step (ordinary assignments always overwrite via
// tracker.Add), any multi-driver interval found here necessarily came from
// combining two branch states, never from within one.
func (d *DFA) collapseDriverConflicts(t *regionTracker) {
	var conflicts []driverConflict

	t.ForEachSymbol(func(symbol *hdlast.ValueSymbol, intervals []drivers.IntervalEntry[NodeID, hdlast.Expression]) {
		for _, interval := range intervals {
			if len(interval.Drivers) < 2 {
				continue
			}
			seen := make(map[NodeID]bool)
			var nodes []NodeID
			for _, rec := range interval.Drivers {
				if !seen[rec.Node] {
					seen[rec.Node] = true
					nodes = append(nodes, rec.Node)
				}
			}
			if len(nodes) < 2 {
				continue
			}
			conflicts = append(conflicts, driverConflict{symbol, interval.Range, nodes})
		}
	})

	for _, c := range conflicts {
		merged := c.nodes[0]
		for _, n := range c.nodes[1:] {
			merged = d.builder.Merge(merged, n)
		}
		t.Add(c.symbol, nil, c.r, merged)
	}
}
