package pathquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/netlist"
	"github.com/jameshanlon/netlistgraph/pathquery"
)

func newNode(b *netlist.Builder, name string) netlist.NodeID {
	sym := &hdlast.ValueSymbol{Name: name, Width: 1}
	return b.CreateVariable(sym, bitrange.New(0, 0))
}

func TestFindNilGraph(t *testing.T) {
	path, ok := pathquery.Find(nil, 1, 2)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindSameNode(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	a := newNode(b, "a")

	path, ok := pathquery.Find(b.Graph(), a, a)
	assert.True(t, ok)
	assert.Equal(t, []netlist.NodeID{a}, path)
}

func TestFindDirectPath(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	a, c, d := newNode(b, "a"), newNode(b, "c"), newNode(b, "d")
	b.AddDependency(a, c)
	b.AddDependency(c, d)

	path, ok := pathquery.Find(b.Graph(), a, d)
	assert.True(t, ok)
	assert.Equal(t, []netlist.NodeID{a, c, d}, path)
}

func TestFindNoPath(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	a, c := newNode(b, "a"), newNode(b, "c")

	path, ok := pathquery.Find(b.Graph(), a, c)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindIgnoresDisabledEdge(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	a, c := newNode(b, "a"), newNode(b, "c")
	b.AddDependency(a, c)

	eid, found := b.Graph().FindEdge(a, c)
	assert.True(t, found)
	label, _, _, _ := b.Graph().Edge(eid)
	label.Disabled = true
	assert.NoError(t, b.Graph().SetEdgeLabel(eid, label))

	path, ok := pathquery.Find(b.Graph(), a, c)
	assert.False(t, ok)
	assert.Nil(t, path)
}
