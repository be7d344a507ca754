package hdlast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
)

func TestValueSymbolBounds(t *testing.T) {
	sym := &hdlast.ValueSymbol{Name: "t", Width: 8}
	assert.Equal(t, bitrange.New(0, 7), sym.Bounds())

	zeroWidth := &hdlast.ValueSymbol{Name: "z"}
	assert.Equal(t, bitrange.New(0, 0), zeroWidth.Bounds())
}

func TestPortSymbolDirection(t *testing.T) {
	in := &hdlast.PortSymbol{Dir: hdlast.DirInput}
	out := &hdlast.PortSymbol{Dir: hdlast.DirOutput}
	inout := &hdlast.PortSymbol{Dir: hdlast.DirInOut}

	assert.True(t, in.IsInput())
	assert.False(t, in.IsOutput())

	assert.True(t, out.IsOutput())
	assert.False(t, out.IsInput())

	assert.True(t, inout.IsInput())
	assert.True(t, inout.IsOutput())
}

func TestIsSoleConcurrentAssertion(t *testing.T) {
	assertion := &hdlast.ConcurrentAssertionStatement{}
	wrapped := &hdlast.Block{Stmts: []hdlast.Statement{assertion}}
	nested := &hdlast.Block{Stmts: []hdlast.Statement{wrapped}}
	other := &hdlast.ExpressionStatement{}
	mixed := &hdlast.Block{Stmts: []hdlast.Statement{assertion, other}}

	assert.True(t, hdlast.IsSoleConcurrentAssertion(assertion))
	assert.True(t, hdlast.IsSoleConcurrentAssertion(wrapped))
	assert.True(t, hdlast.IsSoleConcurrentAssertion(nested))
	assert.False(t, hdlast.IsSoleConcurrentAssertion(other))
	assert.False(t, hdlast.IsSoleConcurrentAssertion(mixed))
}

func TestStaticEvalContext(t *testing.T) {
	ctx := hdlast.NewStaticEvalContext()
	sym := &hdlast.ValueSymbol{Name: "a", Width: 4}
	guard := &hdlast.LiteralExpr{Value: 0}
	sel := &hdlast.LiteralExpr{Value: 1}
	lsp := &hdlast.ElementSelectExpr{Selector: sel}

	ctx.SetConstantBool(guard, false)
	ctx.SetConstantSelector(sel)
	ctx.SetBounds(sym, lsp, bitrange.New(1, 1))

	v, isConst := ctx.ConstantBool(guard)
	assert.True(t, isConst)
	assert.False(t, v)

	assert.True(t, ctx.IsConstantSelector(sel))
	assert.False(t, ctx.IsConstantSelector(guard))

	r, ok := ctx.Bounds(sym, lsp)
	assert.True(t, ok)
	assert.Equal(t, bitrange.New(1, 1), r)

	_, ok = ctx.Bounds(sym, &hdlast.ElementSelectExpr{})
	assert.False(t, ok)

	r, ok = ctx.Bounds(sym, nil)
	assert.True(t, ok)
	assert.Equal(t, sym.Bounds(), r)
}

func TestExpressionOperands(t *testing.T) {
	sym := &hdlast.ValueSymbol{Name: "a", Width: 4}
	nv := &hdlast.NamedValueExpr{Symbol: sym}
	sel := &hdlast.LiteralExpr{Value: 2}
	es := &hdlast.ElementSelectExpr{Value: nv, Selector: sel}

	assert.Nil(t, nv.Operands())
	assert.Equal(t, []hdlast.Expression{nv, sel}, es.Operands())
}
