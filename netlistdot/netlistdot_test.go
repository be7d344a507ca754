package netlistdot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/netlist"
	"github.com/jameshanlon/netlistgraph/netlistdot"
)

func TestRenderEmptyGraph(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	out := netlistdot.Render(b.Graph())
	assert.Equal(t, "digraph {\n  node [shape=record];\n}\n", out)
}

func TestRenderVariableAndAssignment(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	sym := &hdlast.ValueSymbol{Name: "a", Width: 1}
	v := b.CreateVariable(sym, bitrange.New(0, 0))
	a := b.CreateAssignment(&hdlast.AssignmentExpr{})
	b.Graph().AddLabelledEdge(v, a, sym, bitrange.New(0, 0))

	out := netlistdot.Render(b.Graph())
	assert.Contains(t, out, `label="a[0:0]"]`)
	assert.Contains(t, out, `label="Assignment"`)
	assert.Contains(t, out, "->")
}

func TestRenderPortNode(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	internal := &hdlast.ValueSymbol{Name: "clk", Width: 1}
	port := &hdlast.PortSymbol{Name: "clk", Dir: hdlast.DirInput, Internal: internal}
	b.CreatePort(port, bitrange.New(0, 0))

	out := netlistdot.Render(b.Graph())
	assert.Contains(t, out, "input port clk")
}

func TestRenderDisabledEdgeIsDashed(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	sym := &hdlast.ValueSymbol{Name: "a", Width: 1}
	v := b.CreateVariable(sym, bitrange.New(0, 0))
	a := b.CreateAssignment(&hdlast.AssignmentExpr{})
	b.AddDependency(v, a)

	eid, found := b.Graph().FindEdge(v, a)
	assert.True(t, found)
	label, _, _, _ := b.Graph().Edge(eid)
	label.Disabled = true
	assert.NoError(t, b.Graph().SetEdgeLabel(eid, label))

	out := netlistdot.Render(b.Graph())
	assert.True(t, strings.Contains(out, "style=dashed"))
}
