package hdlast

// SourceRange is a diagnostic-only source span; the core never interprets
// it beyond carrying it through to error messages and DOT labels.
type SourceRange struct {
	Start, End int
}

// Expression is any value-producing AST node the core's LSP extractor and
// data-flow analysis walk. Concrete types below cover every kind the core
// dispatches on specially; Operands lets the generic walker recurse into
// anything else (binary/unary operators, calls, concatenations, literals)
// without the core needing a case for every operator.
type Expression interface {
	SourceRange() SourceRange
	// Operands returns this expression's direct sub-expressions, or nil
	// for a leaf. The LSP extractor recurses into Operands for any
	// expression kind it does not special-case.
	Operands() []Expression
}

// NamedValueExpr references a value symbol directly (an identifier, or a
// hierarchical reference resolved to its target symbol).
type NamedValueExpr struct {
	Range  SourceRange
	Symbol *ValueSymbol
}

func (e *NamedValueExpr) SourceRange() SourceRange { return e.Range }
func (e *NamedValueExpr) Operands() []Expression   { return nil }

// LiteralExpr is a constant value with no symbol reference.
type LiteralExpr struct {
	Range SourceRange
	Value int64
}

func (e *LiteralExpr) SourceRange() SourceRange { return e.Range }
func (e *LiteralExpr) Operands() []Expression   { return nil }

// ElementSelectExpr selects a single bit/element of Value by Selector
// (`value[selector]`).
type ElementSelectExpr struct {
	Range    SourceRange
	Value    Expression
	Selector Expression
}

func (e *ElementSelectExpr) SourceRange() SourceRange { return e.Range }
func (e *ElementSelectExpr) Operands() []Expression   { return []Expression{e.Value, e.Selector} }

// RangeSelectExpr selects a contiguous sub-range of Value
// (`value[left:right]`).
type RangeSelectExpr struct {
	Range       SourceRange
	Value       Expression
	Left, Right Expression
}

func (e *RangeSelectExpr) SourceRange() SourceRange { return e.Range }
func (e *RangeSelectExpr) Operands() []Expression {
	return []Expression{e.Value, e.Left, e.Right}
}

// MemberAccessKind distinguishes the two forms of member access the LSP
// extractor treats differently: a handle-typed base (class, covergroup,
// interface/virtual interface) never contributes to an LSP across the
// access, while a packed-aggregate (struct/union) member access does.
type MemberAccessKind int

const (
	MemberAccessHandle MemberAccessKind = iota
	MemberAccessPackedAggregate
)

// MemberAccessExpr is `base.member`.
type MemberAccessExpr struct {
	RangeVal SourceRange
	Base     Expression
	Member   string
	Kind     MemberAccessKind
}

func (e *MemberAccessExpr) SourceRange() SourceRange { return e.RangeVal }
func (e *MemberAccessExpr) Operands() []Expression   { return []Expression{e.Base} }

// ConversionExpr is an implicit or explicit type conversion; it passes its
// operand through unchanged for LSP purposes.
type ConversionExpr struct {
	Range   SourceRange
	Operand Expression
}

func (e *ConversionExpr) SourceRange() SourceRange { return e.Range }
func (e *ConversionExpr) Operands() []Expression   { return []Expression{e.Operand} }

// BinaryExpr covers every binary operator the core does not special-case;
// the LSP extractor simply recurses into both operands.
type BinaryExpr struct {
	Range       SourceRange
	Op          string
	Left, Right Expression
}

func (e *BinaryExpr) SourceRange() SourceRange { return e.Range }
func (e *BinaryExpr) Operands() []Expression   { return []Expression{e.Left, e.Right} }

// UnaryExpr covers unary operators.
type UnaryExpr struct {
	Range   SourceRange
	Op      string
	Operand Expression
}

func (e *UnaryExpr) SourceRange() SourceRange { return e.Range }
func (e *UnaryExpr) Operands() []Expression   { return []Expression{e.Operand} }

// AssignmentExpr is `lhs = rhs` or `lhs <= rhs`; it is itself an
// expression in the source language (assignments can nest in expression
// contexts) but the core only ever encounters it as an expression
// statement's expression.
type AssignmentExpr struct {
	Range       SourceRange
	LHS, RHS    Expression
	Blocking    bool
	IsLValueArg bool // true for an assignment passed to a function as an out/ref argument: the RHS is not walked
}

func (e *AssignmentExpr) SourceRange() SourceRange { return e.Range }
func (e *AssignmentExpr) Operands() []Expression   { return []Expression{e.LHS, e.RHS} }
