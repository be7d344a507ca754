// Package lsp implements the longest-static-prefix extractor: it converts
// an arbitrary expression into a sequence of (value-symbol, LSP, bit-range,
// is-lvalue) events the data-flow analysis consumes, tracking a "current
// LSP" expression along any chain of constant selects or packed-aggregate
// member accesses so that e.g. `a[3:2][0]` resolves to a single bit of `a`
// rather than two independent selects.
//
// Grounded on the LSPVisitor<TOwner> template in main.cpp, generalized
// from a C++ CRTP mixin into a Go function that reports events to an
// EventSink.
package lsp

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
)

// EventSink receives one callback per named-value reference the extractor
// resolves, in expression-tree traversal order.
type EventSink interface {
	OnReference(symbol *hdlast.ValueSymbol, lsp hdlast.Expression, bounds bitrange.Range, isLValue bool)
}

// Extract walks expr, reporting every named-value reference it resolves
// to sink. isLValue seeds the lvalue flag for the root of the walk; it is
// suppressed while descending into selectors and the base of a
// handle-typed member access, per the rules below.
func Extract(expr hdlast.Expression, ctx hdlast.EvalContext, isLValue bool, sink EventSink) {
	walk(expr, nil, isLValue, ctx, sink)
}

func walk(expr hdlast.Expression, currentLSP hdlast.Expression, isLValue bool, ctx hdlast.EvalContext, sink EventSink) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *hdlast.NamedValueExpr:
		lsp := currentLSP
		if lsp == nil {
			lsp = e
		}
		bounds, ok := ctx.Bounds(e.Symbol, lsp)
		if !ok {
			bounds = e.Symbol.Bounds()
		}
		sink.OnReference(e.Symbol, lsp, bounds, isLValue)

	case *hdlast.ElementSelectExpr:
		if ctx.IsConstantSelector(e.Selector) {
			lsp := currentLSP
			if lsp == nil {
				lsp = e
			}
			walk(e.Value, lsp, isLValue, ctx, sink)
		} else {
			walk(e.Value, nil, isLValue, ctx, sink)
		}
		walk(e.Selector, nil, false, ctx, sink)

	case *hdlast.RangeSelectExpr:
		if ctx.IsConstantSelector(e.Left) && ctx.IsConstantSelector(e.Right) {
			lsp := currentLSP
			if lsp == nil {
				lsp = e
			}
			walk(e.Value, lsp, isLValue, ctx, sink)
		} else {
			walk(e.Value, nil, isLValue, ctx, sink)
		}
		walk(e.Left, nil, false, ctx, sink)
		walk(e.Right, nil, false, ctx, sink)

	case *hdlast.MemberAccessExpr:
		if e.Kind == hdlast.MemberAccessHandle {
			// LSPs do not cross a class/covergroup handle: whatever
			// prefix was accumulating is dropped, and the base is
			// walked as its own rvalue.
			walk(e.Base, nil, false, ctx, sink)
		} else {
			lsp := currentLSP
			if lsp == nil {
				lsp = e
			}
			walk(e.Base, lsp, isLValue, ctx, sink)
		}

	case *hdlast.ConversionExpr:
		walk(e.Operand, currentLSP, isLValue, ctx, sink)

	default:
		for _, op := range expr.Operands() {
			walk(op, nil, isLValue, ctx, sink)
		}
	}
}
