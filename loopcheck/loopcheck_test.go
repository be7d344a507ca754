package loopcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/hdlast"
	"github.com/jameshanlon/netlistgraph/loopcheck"
	"github.com/jameshanlon/netlistgraph/netlist"
)

func newNode(b *netlist.Builder, name string) netlist.NodeID {
	sym := &hdlast.ValueSymbol{Name: name, Width: 1}
	return b.CreateVariable(sym, bitrange.New(0, 0))
}

func TestDetectCyclesNilGraph(t *testing.T) {
	cycles, err := loopcheck.DetectCycles(nil)
	require.NoError(t, err)
	assert.Nil(t, cycles)
}

func TestDetectCyclesAcyclic(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	a, c, d := newNode(b, "a"), newNode(b, "c"), newNode(b, "d")
	b.AddDependency(a, c)
	b.AddDependency(c, d)

	cycles, err := loopcheck.DetectCycles(b.Graph())
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestDetectCyclesSimpleCycle(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	n1, n2, n3 := newNode(b, "1"), newNode(b, "2"), newNode(b, "3")
	b.AddDependency(n1, n2)
	b.AddDependency(n2, n3)
	b.AddDependency(n3, n1)

	cycles, err := loopcheck.DetectCycles(b.Graph())
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, []netlist.NodeID{n1, n2, n3, n1}, cycles[0])
}

func TestDetectCyclesTwoDisjointCycles(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	n1, n2 := newNode(b, "1"), newNode(b, "2")
	n3, n4 := newNode(b, "3"), newNode(b, "4")
	b.AddDependency(n1, n2)
	b.AddDependency(n2, n1)
	b.AddDependency(n3, n4)
	b.AddDependency(n4, n3)

	cycles, err := loopcheck.DetectCycles(b.Graph())
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.Equal(t, []netlist.NodeID{n1, n2, n1}, cycles[0])
	assert.Equal(t, []netlist.NodeID{n3, n4, n3}, cycles[1])
}

func TestDetectCyclesRotationCanonical(t *testing.T) {
	b := netlist.NewBuilder(netlist.Config{})
	n1, n2, n3 := newNode(b, "1"), newNode(b, "2"), newNode(b, "3")
	// Edges traversed starting from n2 (DFS root order follows IterNodes,
	// which is ascending by id, so n1 is visited first regardless); the
	// cycle must still canonicalise to start at the minimum id, n1.
	b.AddDependency(n2, n3)
	b.AddDependency(n3, n1)
	b.AddDependency(n1, n2)

	cycles, err := loopcheck.DetectCycles(b.Graph())
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, n1, cycles[0][0])
	assert.Equal(t, n1, cycles[0][len(cycles[0])-1])
}
