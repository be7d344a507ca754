// Package drivers implements the value/driver tracker: the arithmetic heart
// of the netlist core. For each externally-identified value symbol it
// maintains a non-overlapping interval map from bit range to the graph
// node(s) that drive it, with precise overlap, containment, replacement and
// merge semantics.
//
// Grounded on DriverTracker/SymbolTracker (source/DriverTracker.cpp,
// include/netlist/SymbolTracker.hpp); the six-case overlap algorithm here
// is written out in full, since that source left it as a commented-out
// sketch.
package drivers

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/driverstore"
	"github.com/jameshanlon/netlistgraph/intervalmap"
)

// Record is a single driver of a bit range: the graph node that defines it,
// and the LSP expression by which it did so.
type Record[Node any, LSP any] struct {
	Node Node
	LSP  LSP
}

// List is a set of driver records associated with one interval of a
// symbol's driver map.
type List[Node any, LSP any] []Record[Node, LSP]

func copyList[Node any, LSP any](l List[Node, LSP]) List[Node, LSP] {
	out := make(List[Node, LSP], len(l))
	copy(out, l)
	return out
}

// IntervalEntry is one (range, driver-list) pair yielded by
// Tracker.ForEachSymbol, used by the builder to walk every driven interval
// of every symbol touched by a procedural region.
type IntervalEntry[Node any, LSP any] struct {
	Range bitrange.Range
	Drivers List[Node, LSP]
}

// Tracker owns the slot table and per-symbol interval maps that together
// form a symbol-driver map. Symbol must be a comparable identity (typically
// a pointer type supplied by hdlast).
//
// A Tracker is used both as a procedural region's ephemeral analysis state
// (cloned/merged by the data-flow analysis's join) and as the module-level
// driver map owned by the builder; both roles use the exact same type,
// with per-procedure state merged into module-level state by the builder.
type Tracker[Symbol comparable, Node any, LSP any] struct {
	slotOf     map[Symbol]int
	slotSymbol []Symbol
	maps       []*intervalmap.Map[driverstore.Handle]
	store      *driverstore.Store[List[Node, LSP]]
}

// New constructs an empty Tracker.
func New[Symbol comparable, Node any, LSP any]() *Tracker[Symbol, Node, LSP] {
	return &Tracker[Symbol, Node, LSP]{
		slotOf: make(map[Symbol]int),
		store:  driverstore.New[List[Node, LSP]](),
	}
}

// slotFor returns the dense slot index for symbol, assigning a fresh one
// (and growing the backing vectors) the first time symbol is seen. Slots
// are append-only and never migrate.
func (t *Tracker[S, N, L]) slotFor(symbol S) int {
	if idx, ok := t.slotOf[symbol]; ok {
		return idx
	}
	idx := len(t.slotSymbol)
	t.slotOf[symbol] = idx
	t.slotSymbol = append(t.slotSymbol, symbol)
	t.maps = append(t.maps, intervalmap.New[driverstore.Handle]())
	return idx
}

// SlotOf returns the slot assigned to symbol and whether symbol has been
// seen before.
func (t *Tracker[S, N, L]) SlotOf(symbol S) (int, bool) {
	idx, ok := t.slotOf[symbol]
	return idx, ok
}

// HasSymbol reports whether symbol has any tracked interval at all.
func (t *Tracker[S, N, L]) HasSymbol(symbol S) bool {
	idx, ok := t.slotOf[symbol]
	return ok && t.maps[idx].Len() > 0
}
