package drivers

import (
	"github.com/jameshanlon/netlistgraph/bitrange"
	"github.com/jameshanlon/netlistgraph/driverstore"
	"github.com/jameshanlon/netlistgraph/intervalmap"
)

// Add records node (with its LSP) as the driver of r within symbol,
// overwriting any existing driver for bits also covered by r. Partially
// overlapping prior intervals are split so that the parts outside r keep
// their original drivers.
func (t *Tracker[S, N, L]) Add(symbol S, lsp L, r bitrange.Range, node N) {
	t.apply(symbol, lsp, r, node, false)
}

// Merge records node (with its LSP) as an additional driver of r within
// symbol, additively: bits already driven keep their existing drivers and
// gain node as a further driver; only bits not previously driven get a
// fresh singleton driver list.
func (t *Tracker[S, N, L]) Merge(symbol S, lsp L, r bitrange.Range, node N) {
	t.apply(symbol, lsp, r, node, true)
}

// apply implements the six-case overlap resolution between a new range and
// the existing stored intervals. merge selects additive (true) vs
// overwriting (false) semantics for bits where
// the new range r overlaps an existing stored interval.
//
// The driver map for symbol is scanned one overlapping interval at a time,
// always via a fresh Find against the still-uncovered remainder of r, so
// that index shifts caused by Erase never invalidate an iterator still
// being held.
func (t *Tracker[S, N, L]) apply(symbol S, lsp L, r bitrange.Range, node N, merge bool) {
	idx := t.slotFor(symbol)
	m := t.maps[idx]
	nl, nh := r.Lo, r.Hi

	for nl <= nh {
		hits := m.Find(bitrange.New(nl, nh))
		if len(hits) == 0 {
			break
		}
		it := hits[0]
		e := m.Bounds(it)
		el, eh := e.Lo, e.Hi
		handle := m.Value(it)

		// Checked in this order so every one of the nine possible
		// relations between (nl, el) and (nh, eh) is claimed exactly
		// once, including the flush-edge variants of containment that
		// sit between the named cases (e.g. el == nl with nh < eh):
		// exact match, then either side containing the other
		// (inclusive of a flush edge), then the two partial-overlap
		// shapes.
		switch {
		case el == nl && eh == nh:
			// Case 5: exact match. Terminal.
			m.Erase(it)
			m.Insert(bitrange.New(nl, nh), t.resolvedHandle(handle, lsp, node, merge))
			t.store.Erase(handle)
			return

		case el <= nl && nh <= eh:
			// Case 1: E contains N (el <= nl <= nh <= eh, excluding the
			// exact match already handled above). Split E into a left
			// and right remainder, each keeping a copy of E's drivers,
			// skipping whichever flank would be empty, and insert N as
			// its own interval. Fully resolves r; return.
			m.Erase(it)
			if el < nl {
				m.Insert(bitrange.New(el, nl-1), t.cloneHandle(handle))
			}
			if nh < eh {
				m.Insert(bitrange.New(nh+1, eh), t.cloneHandle(handle))
			}
			m.Insert(bitrange.New(nl, nh), t.resolvedHandle(handle, lsp, node, merge))
			t.store.Erase(handle)
			return

		case nl <= el && eh < nh:
			// Case 2: N contains E (nl <= el <= eh < nh).
			if !merge {
				// Overwrite: E disappears entirely; continue scanning
				// the rest of r for further overlaps. The span E used
				// to cover is folded into whatever fresh interval
				// eventually covers the remainder of r.
				m.Erase(it)
				t.store.Erase(handle)
				continue
			}
			// Merge: E keeps its own identity and simply gains node;
			// the flank of r to its left, if any, is not covered by
			// any existing interval and becomes its own fresh
			// singleton.
			if nl < el {
				m.Insert(bitrange.New(nl, el-1), t.singletonHandle(lsp, node))
			}
			t.appendInPlace(handle, lsp, node)
			nl = eh + 1
			continue

		case nl < el && nh <= eh:
			// Case 4: E right-overlaps N (nl < el <= nh <= eh). Terminal:
			// whatever remains of r after eh is nothing, since nh <= eh.
			m.Erase(it)
			// The flank of N left of el never touched E, so it is
			// inserted as its own fresh interval rather than folded
			// into one bulk [nl,nh] insert alongside the overlap zone
			// (see DESIGN.md's driver-overlap worked example, which
			// depends on this flank staying a distinct interval).
			if nl < el {
				m.Insert(bitrange.New(nl, el-1), t.singletonHandle(lsp, node))
			}
			m.Insert(bitrange.New(el, nh), t.resolvedHandle(handle, lsp, node, merge))
			if nh < eh {
				m.Insert(bitrange.New(nh+1, eh), t.cloneHandle(handle))
			}
			t.store.Erase(handle)
			return

		case el <= nl && eh < nh:
			// Case 3: E left-overlaps N (el <= nl <= eh < nh).
			m.Erase(it)
			if el < nl {
				m.Insert(bitrange.New(el, nl-1), t.cloneHandle(handle))
			}
			m.Insert(bitrange.New(nl, eh), t.resolvedHandle(handle, lsp, node, merge))
			t.store.Erase(handle)
			nl = eh + 1
			continue

		default:
			// Case 6: disjoint. Find only returns overlapping intervals,
			// so this is unreachable; guard against an infinite loop
			// regardless.
			break
		}
		break
	}

	if nl <= nh {
		m.Insert(bitrange.New(nl, nh), t.singletonHandle(lsp, node))
	}
}

// cloneHandle allocates a new handle holding an independent copy of the
// driver list currently addressed by h, so that two split fragments of a
// formerly single interval never alias one another's driver list.
func (t *Tracker[S, N, L]) cloneHandle(h driverstore.Handle) driverstore.Handle {
	return t.store.Allocate(copyList(*t.store.Get(h)))
}

// resolvedHandle allocates a new handle holding either {node} alone
// (overwrite) or a copy of h's existing drivers plus node (merge).
func (t *Tracker[S, N, L]) resolvedHandle(h driverstore.Handle, lsp L, node N, merge bool) driverstore.Handle {
	if !merge {
		return t.singletonHandle(lsp, node)
	}
	list := append(copyList(*t.store.Get(h)), Record[N, L]{Node: node, LSP: lsp})
	return t.store.Allocate(list)
}

func (t *Tracker[S, N, L]) singletonHandle(lsp L, node N) driverstore.Handle {
	return t.store.Allocate(List[N, L]{{Node: node, LSP: lsp}})
}

// appendInPlace mutates the driver list addressed by h to add node, keeping
// h's identity (and thus its interval's identity) unchanged.
func (t *Tracker[S, N, L]) appendInPlace(h driverstore.Handle, lsp L, node N) {
	p := t.store.Get(h)
	*p = append(*p, Record[N, L]{Node: node, LSP: lsp})
}

// MergeList folds every record of list into symbol's bit range r, one at a
// time, via Merge. Used when unioning a whole region's driver map into
// another one (branch confluence, module-level procedural-driver merge)
// rather than recording a single new driver.
func (t *Tracker[S, N, L]) MergeList(symbol S, r bitrange.Range, list List[N, L]) {
	for _, rec := range list {
		t.Merge(symbol, rec.LSP, r, rec.Node)
	}
}

// Get returns the union of driver lists for every stored interval that
// overlaps query under the inclusive containment policy: an interval E
// contributes its drivers if E contains query or query contains E (see
// DESIGN.md Open Question 1). Partial, non-containing overlaps contribute
// nothing, matching the source's getDrivers.
func (t *Tracker[S, N, L]) Get(symbol S, query bitrange.Range) List[N, L] {
	idx, ok := t.slotOf[symbol]
	if !ok {
		return nil
	}
	m := t.maps[idx]
	var out List[N, L]
	for _, it := range m.Find(query) {
		e := m.Bounds(it)
		if query.Contains(e) || e.Contains(query) {
			out = append(out, *t.store.Get(m.Value(it))...)
		}
	}
	return out
}

// Residual returns the sub-ranges of query not covered by any interval
// currently stored for symbol, ascending by Lo. Used by the data-flow
// analysis to find the part of an R-value not driven within the current
// region, so it can be queued as a pending R-value against the eventual
// module-level drivers.
func (t *Tracker[S, N, L]) Residual(symbol S, query bitrange.Range) []bitrange.Range {
	queryMap := intervalmap.New[driverstore.Handle]()
	queryMap.Insert(query, driverstore.Handle(0))

	definitions := intervalmap.New[driverstore.Handle]()
	if idx, ok := t.slotOf[symbol]; ok {
		definitions = t.maps[idx]
	}

	var out []bitrange.Range
	for _, e := range intervalmap.Difference(queryMap, definitions).All() {
		out = append(out, e.Range)
	}
	return out
}

// ForEachSymbol visits every tracked symbol and its current set of driven
// intervals, in the order symbols were first seen. Used by a builder to
// walk a procedural region's accumulated drivers when merging them into
// module-level state.
func (t *Tracker[S, N, L]) ForEachSymbol(visit func(symbol S, intervals []IntervalEntry[N, L])) {
	for idx, symbol := range t.slotSymbol {
		m := t.maps[idx]
		all := m.All()
		if len(all) == 0 {
			continue
		}
		intervals := make([]IntervalEntry[N, L], len(all))
		for i, e := range all {
			intervals[i] = IntervalEntry[N, L]{Range: e.Range, Drivers: *t.store.Get(e.Value)}
		}
		visit(symbol, intervals)
	}
}

// Clone produces an independent deep copy of t: a separate slot table,
// separate interval maps, and a separate driver-list store, so mutating the
// clone (as the data-flow analysis does when it forks state across a
// branch) never affects t.
//
// The underlying driverstore.Store is cloned positionally (Store.Clone
// preserves each handle's numeric value), so the cloned interval maps'
// stored handles remain valid against the cloned store without any
// remapping.
func (t *Tracker[S, N, L]) Clone() *Tracker[S, N, L] {
	out := &Tracker[S, N, L]{
		slotOf:     make(map[S]int, len(t.slotOf)),
		slotSymbol: append([]S(nil), t.slotSymbol...),
		maps:       make([]*intervalmap.Map[driverstore.Handle], len(t.maps)),
		store:      t.store.Clone(copyList[N, L]),
	}
	for k, v := range t.slotOf {
		out.slotOf[k] = v
	}
	for i, m := range t.maps {
		out.maps[i] = m.Clone()
	}
	return out
}
