package intervalmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/intervalmap"
)

func TestInsertAndAllOrdered(t *testing.T) {
	m := intervalmap.New[string]()
	m.Insert(bitrange.New(10, 20), "c")
	m.Insert(bitrange.New(0, 5), "a")
	m.Insert(bitrange.New(6, 9), "b")

	all := m.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Value)
	assert.Equal(t, "b", all[1].Value)
	assert.Equal(t, "c", all[2].Value)
}

func TestFindOverlapping(t *testing.T) {
	m := intervalmap.New[string]()
	m.Insert(bitrange.New(0, 3), "a")
	m.Insert(bitrange.New(4, 7), "b")
	m.Insert(bitrange.New(8, 11), "c")

	hits := m.Find(bitrange.New(3, 8))
	require.Len(t, hits, 3)
	assert.Equal(t, "a", m.Value(hits[0]))
	assert.Equal(t, "b", m.Value(hits[1]))
	assert.Equal(t, "c", m.Value(hits[2]))
}

func TestErase(t *testing.T) {
	m := intervalmap.New[string]()
	m.Insert(bitrange.New(0, 3), "a")
	m.Insert(bitrange.New(4, 7), "b")

	hits := m.Find(bitrange.New(4, 7))
	require.Len(t, hits, 1)
	m.Erase(hits[0])

	assert.Equal(t, 1, m.Len())
	remaining := m.All()
	require.Len(t, remaining, 1)
	assert.Equal(t, "a", remaining[0].Value)
}

func TestClone(t *testing.T) {
	m := intervalmap.New[string]()
	m.Insert(bitrange.New(0, 3), "a")

	clone := m.Clone()
	clone.Insert(bitrange.New(4, 7), "b")

	assert.Equal(t, 1, m.Len(), "original must be unaffected by mutations on the clone")
	assert.Equal(t, 2, clone.Len())
}

func TestDifference(t *testing.T) {
	a := intervalmap.New[string]()
	a.Insert(bitrange.New(0, 9), "a")

	b := intervalmap.New[string]()
	b.Insert(bitrange.New(3, 6), "b")

	diff := intervalmap.Difference(a, b)
	all := diff.All()
	require.Len(t, all, 2)
	assert.Equal(t, bitrange.New(0, 3), all[0].Range)
	assert.Equal(t, bitrange.New(6, 9), all[1].Range)
	assert.Equal(t, "a", all[0].Value)
	assert.Equal(t, "a", all[1].Value)
}

func TestDifferenceMultipleGaps(t *testing.T) {
	a := intervalmap.New[string]()
	a.Insert(bitrange.New(0, 20), "a")

	b := intervalmap.New[string]()
	b.Insert(bitrange.New(3, 6), "b1")
	b.Insert(bitrange.New(10, 14), "b2")

	diff := intervalmap.Difference(a, b)
	all := diff.All()
	require.Len(t, all, 3)
	assert.Equal(t, bitrange.New(0, 3), all[0].Range)
	assert.Equal(t, bitrange.New(6, 10), all[1].Range)
	assert.Equal(t, bitrange.New(14, 20), all[2].Range)
}

func TestDifferenceNoOverlap(t *testing.T) {
	a := intervalmap.New[string]()
	a.Insert(bitrange.New(0, 3), "a")

	b := intervalmap.New[string]()
	b.Insert(bitrange.New(10, 12), "b")

	diff := intervalmap.Difference(a, b)
	all := diff.All()
	require.Len(t, all, 1)
	assert.Equal(t, bitrange.New(0, 3), all[0].Range)
}
