package hdlast

import "github.com/jameshanlon/netlistgraph/bitrange"

// EvalContext is the constant-evaluation and bounds-resolution context the
// core's LSP extractor and data-flow analysis consult: whether a selector
// expression is a compile-time constant, what a guard expression evaluates
// to when it is constant, and what bit range an LSP expression denotes.
type EvalContext interface {
	// ConstantBool reports the constant boolean value of expr and whether
	// expr is in fact compile-time constant.
	ConstantBool(expr Expression) (value bool, isConst bool)
	// IsConstantSelector reports whether expr, used as an element/range
	// select index, is compile-time constant.
	IsConstantSelector(expr Expression) bool
	// Bounds resolves the bit range that lsp denotes within sym's storage,
	// or ok=false if it cannot be determined (e.g. a variable index into
	// an unpacked array).
	Bounds(sym *ValueSymbol, lsp Expression) (r bitrange.Range, ok bool)
}

// StaticEvalContext is a minimal EvalContext built directly from Go values,
// for use by hand-built designs (tests and examples) rather than a real
// elaborator. Selector/guard constants are recorded by expression identity.
type StaticEvalContext struct {
	constBools map[Expression]bool
	constSels  map[Expression]bool
	bounds     map[boundsKey]bitrange.Range
}

type boundsKey struct {
	sym *ValueSymbol
	lsp Expression
}

// NewStaticEvalContext constructs an empty StaticEvalContext.
func NewStaticEvalContext() *StaticEvalContext {
	return &StaticEvalContext{
		constBools: make(map[Expression]bool),
		constSels:  make(map[Expression]bool),
		bounds:     make(map[boundsKey]bitrange.Range),
	}
}

// SetConstantBool records expr as compile-time constant with the given
// boolean value, for ConstantBool to report back.
func (c *StaticEvalContext) SetConstantBool(expr Expression, value bool) {
	c.constBools[expr] = value
}

// SetConstantSelector marks expr as a compile-time-constant selector.
func (c *StaticEvalContext) SetConstantSelector(expr Expression) {
	c.constSels[expr] = true
}

// SetBounds records the bit range lsp denotes within sym.
func (c *StaticEvalContext) SetBounds(sym *ValueSymbol, lsp Expression, r bitrange.Range) {
	c.bounds[boundsKey{sym, lsp}] = r
}

func (c *StaticEvalContext) ConstantBool(expr Expression) (bool, bool) {
	v, ok := c.constBools[expr]
	return v, ok
}

func (c *StaticEvalContext) IsConstantSelector(expr Expression) bool {
	return c.constSels[expr]
}

func (c *StaticEvalContext) Bounds(sym *ValueSymbol, lsp Expression) (bitrange.Range, bool) {
	if lsp == nil {
		return sym.Bounds(), true
	}
	r, ok := c.bounds[boundsKey{sym, lsp}]
	if !ok {
		return bitrange.Range{}, false
	}
	return r, true
}
