// Package intervalmap implements a non-overlapping ranged key -> value map:
// the building block under driverstore-addressed driver lists and, more
// generally, anywhere a symbol's bit storage must be partitioned into
// disjoint, independently valued sub-ranges.
//
// Intervals stored in a single Map are expected to be pairwise disjoint;
// Map itself does not enforce this on Insert (overlap handling is the
// caller's responsibility) but Find/Erase/Clone/Difference all assume the
// invariant holds.
package intervalmap

import (
	"sort"

	"github.com/jameshanlon/netlistgraph/bitrange"
)

// entry pairs a stored key range with its value.
type entry[V any] struct {
	key   bitrange.Range
	value V
}

// Map is a non-overlapping interval map from bitrange.Range to V.
// The zero value is an empty, usable Map.
type Map[V any] struct {
	// entries is kept sorted ascending by Lo; linear scan is adequate at
	// the small per-symbol cardinalities this component sees in practice
	// (a handful of driver intervals per bit-range-addressable symbol).
	entries []entry[V]
}

// New constructs an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Len returns the number of stored intervals.
func (m *Map[V]) Len() int { return len(m.entries) }

// Insert stores key -> value. The caller is responsible for ensuring key
// does not overlap any interval already present (see drivers.Tracker for
// the overlap-resolving algorithm built on top of this primitive).
func (m *Map[V]) Insert(key bitrange.Range, value V) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].key.Lo >= key.Lo })
	m.entries = append(m.entries, entry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry[V]{key: key, value: value}
}

// Iter is a cursor over one stored interval, returned by Find so that
// callers can both read and Erase the interval it denotes.
type Iter[V any] struct {
	index int
}

// valid reports whether it still denotes a live position within entries.
func (it Iter[V]) valid(entries []entry[V]) bool {
	return it.index >= 0 && it.index < len(entries)
}

// Find returns every stored interval overlapping query, in ascending order
// of Lo, as a slice of iterators; use Bounds/Value to inspect an iterator
// and Erase to remove it.
func (m *Map[V]) Find(query bitrange.Range) []Iter[V] {
	var out []Iter[V]
	for i, e := range m.entries {
		if e.key.Overlaps(query) {
			out = append(out, Iter[V]{index: i})
		}
	}
	return out
}

// Bounds returns the key range at it.
func (m *Map[V]) Bounds(it Iter[V]) bitrange.Range {
	return m.entries[it.index].key
}

// Value returns the value stored at it.
func (m *Map[V]) Value(it Iter[V]) V {
	return m.entries[it.index].value
}

// Erase removes the interval denoted by it. Every stored interval to the
// right of it shifts down one index, so other iterators from the same Find
// call that denote later intervals no longer denote the interval they did;
// call Find again after an Erase rather than reusing them.
func (m *Map[V]) Erase(it Iter[V]) {
	if !it.valid(m.entries) {
		return
	}
	m.entries = append(m.entries[:it.index], m.entries[it.index+1:]...)
}

// All returns every stored (range, value) pair in ascending order of Lo.
func (m *Map[V]) All() []struct {
	Range bitrange.Range
	Value V
} {
	out := make([]struct {
		Range bitrange.Range
		Value V
	}, len(m.entries))
	for i, e := range m.entries {
		out[i].Range = e.key
		out[i].Value = e.value
	}
	return out
}

// Clone produces an independent deep copy sharing no mutable state (values
// of V are copied by assignment; if V is itself a pointer or contains
// mutable reference types, callers needing a deep copy of V must use
// CloneWith with a function that copies each value).
func (m *Map[V]) Clone() *Map[V] {
	out := &Map[V]{entries: make([]entry[V], len(m.entries))}
	copy(out.entries, m.entries)
	return out
}

// CloneWith produces an independent deep copy, applying cloneValue to each
// stored value (used when V carries its own mutable state, e.g. a driver
// list that must not alias the source map's).
func (m *Map[V]) CloneWith(cloneValue func(V) V) *Map[V] {
	out := &Map[V]{entries: make([]entry[V], len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = entry[V]{key: e.key, value: cloneValue(e.value)}
	}
	return out
}

// Difference returns the intervals present in a but not covered by b,
// partitioned at b's boundaries; values carry over from a. cur tracks the
// not-yet-emitted remainder of the a entry currently being processed, so an
// a interval that contains one or more b intervals correctly emits both its
// left and right flanks rather than just one.
func Difference[V any](a, b *Map[V]) *Map[V] {
	out := New[V]()
	if len(a.entries) == 0 {
		return out
	}
	li, ri := 0, 0
	cur := a.entries[li].key
	curVal := a.entries[li].value
	for li < len(a.entries) {
		if ri >= len(b.entries) || cur.Hi < b.entries[ri].key.Lo {
			out.Insert(cur, curVal)
			li++
			if li < len(a.entries) {
				cur = a.entries[li].key
				curVal = a.entries[li].value
			}
			continue
		}
		rkey := b.entries[ri].key
		if rkey.Hi < cur.Lo {
			ri++
			continue
		}
		if cur.Lo < rkey.Lo {
			out.Insert(bitrange.New(cur.Lo, rkey.Lo), curVal)
		}
		if cur.Hi > rkey.Hi {
			cur = bitrange.New(rkey.Hi, cur.Hi)
			ri++
			continue
		}
		li++
		if li < len(a.entries) {
			cur = a.entries[li].key
			curVal = a.entries[li].value
		}
	}
	return out
}
