package digraph

// AddNode inserts a new node carrying payload and returns its id.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(payload N) NodeID {
	g.nextNodeID++
	id := g.nextNodeID
	g.nodes = append(g.nodes, &nodeRecord[N]{
		id:      id,
		alive:   true,
		Payload: payload,
		out:     make(map[NodeID]EdgeID),
		in:      make(map[NodeID]EdgeID),
	})
	g.liveNodes++
	return id
}

// node returns the live record for id, or nil.
func (g *Graph[N, E]) node(id NodeID) *nodeRecord[N] {
	if id == 0 || int(id) > len(g.nodes) {
		return nil
	}
	rec := g.nodes[id-1]
	if rec == nil || !rec.alive {
		return nil
	}
	return rec
}

// edge returns the live record for id, or nil.
func (g *Graph[N, E]) edge(id EdgeID) *edgeRecord[E] {
	if id == 0 || int(id) > len(g.edges) {
		return nil
	}
	rec := g.edges[id-1]
	if rec == nil || !rec.alive {
		return nil
	}
	return rec
}

// HasNode reports whether id refers to a live node.
func (g *Graph[N, E]) HasNode(id NodeID) bool {
	return g.node(id) != nil
}

// Node returns the payload stored at id and whether it is present.
func (g *Graph[N, E]) Node(id NodeID) (N, bool) {
	rec := g.node(id)
	if rec == nil {
		var zero N
		return zero, false
	}
	return rec.Payload, true
}

// SetNode overwrites the payload stored at id. Returns ErrNodeNotFound if
// id is not live.
func (g *Graph[N, E]) SetNode(id NodeID, payload N) error {
	rec := g.node(id)
	if rec == nil {
		return ErrNodeNotFound
	}
	rec.Payload = payload
	return nil
}

// RemoveNode removes id and every edge incident on it (incoming or
// outgoing). Returns ErrNodeNotFound if id is not live.
// Complexity: O(deg(id)).
func (g *Graph[N, E]) RemoveNode(id NodeID) error {
	rec := g.node(id)
	if rec == nil {
		return ErrNodeNotFound
	}
	for neighbor, eid := range rec.out {
		g.detachEdge(eid, id, neighbor)
	}
	for neighbor, eid := range rec.in {
		g.detachEdge(eid, neighbor, id)
	}
	rec.alive = false
	rec.out = nil
	rec.in = nil
	g.liveNodes--
	return nil
}

// detachEdge marks eid dead and removes its adjacency entries from both
// endpoints; it does not re-validate that source/target still reference it.
func (g *Graph[N, E]) detachEdge(eid EdgeID, source, target NodeID) {
	e := g.edge(eid)
	if e == nil {
		return
	}
	e.alive = false
	g.liveEdges--
	if src := g.node(source); src != nil {
		delete(src.out, target)
	}
	if tgt := g.node(target); tgt != nil {
		delete(tgt.in, source)
	}
}

// AddEdge creates an edge source -> target carrying payload. If such an edge
// already exists, AddEdge returns its existing id unchanged (never
// duplicates, the existing payload is left untouched). Returns
// ErrNodeNotFound if either endpoint is absent.
// Complexity: O(1).
func (g *Graph[N, E]) AddEdge(source, target NodeID, payload E) (EdgeID, error) {
	src := g.node(source)
	tgt := g.node(target)
	if src == nil || tgt == nil {
		return 0, ErrNodeNotFound
	}
	if existing, ok := src.out[target]; ok {
		return existing, nil
	}
	g.nextEdgeID++
	id := g.nextEdgeID
	g.edges = append(g.edges, &edgeRecord[E]{
		id:      id,
		source:  source,
		target:  target,
		alive:   true,
		Payload: payload,
	})
	g.liveEdges++
	src.out[target] = id
	tgt.in[source] = id
	return id, nil
}

// HasEdge reports whether a live edge source -> target exists.
func (g *Graph[N, E]) HasEdge(source, target NodeID) bool {
	src := g.node(source)
	if src == nil {
		return false
	}
	_, ok := src.out[target]
	return ok
}

// FindEdge returns the id of the edge source -> target, if present.
func (g *Graph[N, E]) FindEdge(source, target NodeID) (EdgeID, bool) {
	src := g.node(source)
	if src == nil {
		return 0, false
	}
	id, ok := src.out[target]
	return id, ok
}

// Edge returns the payload, source and target of id.
func (g *Graph[N, E]) Edge(id EdgeID) (payload E, source NodeID, target NodeID, ok bool) {
	e := g.edge(id)
	if e == nil {
		return payload, 0, 0, false
	}
	return e.Payload, e.source, e.target, true
}

// SetEdge overwrites the payload stored at id.
func (g *Graph[N, E]) SetEdge(id EdgeID, payload E) error {
	e := g.edge(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	e.Payload = payload
	return nil
}

// RemoveEdge removes the unique edge source -> target. Returns
// ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[N, E]) RemoveEdge(source, target NodeID) error {
	src := g.node(source)
	if src == nil {
		return ErrEdgeNotFound
	}
	eid, ok := src.out[target]
	if !ok {
		return ErrEdgeNotFound
	}
	g.detachEdge(eid, source, target)
	return nil
}

// OutDegree returns the number of edges leaving id. Complexity: O(1).
func (g *Graph[N, E]) OutDegree(id NodeID) int {
	rec := g.node(id)
	if rec == nil {
		return 0
	}
	return len(rec.out)
}

// InDegree returns the number of edges arriving at id. Complexity: O(1).
func (g *Graph[N, E]) InDegree(id NodeID) int {
	rec := g.node(id)
	if rec == nil {
		return 0
	}
	return len(rec.in)
}

// IterOutEdges returns the ids of every edge leaving id, sorted for
// deterministic iteration. Complexity: O(deg log deg).
func (g *Graph[N, E]) IterOutEdges(id NodeID) []EdgeID {
	rec := g.node(id)
	if rec == nil {
		return nil
	}
	return sortedEdgeIDs(rec.out)
}

// IterInEdges returns the ids of every edge arriving at id, sorted for
// deterministic iteration. Complexity: O(deg log deg).
func (g *Graph[N, E]) IterInEdges(id NodeID) []EdgeID {
	rec := g.node(id)
	if rec == nil {
		return nil
	}
	return sortedEdgeIDs(rec.in)
}

func sortedEdgeIDs(m map[NodeID]EdgeID) []EdgeID {
	out := make([]EdgeID, 0, len(m))
	for _, eid := range m {
		out = append(out, eid)
	}
	sortEdgeIDs(out)
	return out
}

// IterNodes returns the ids of every live node, sorted ascending.
// Complexity: O(V log V).
func (g *Graph[N, E]) IterNodes() []NodeID {
	out := make([]NodeID, 0, g.liveNodes)
	for _, rec := range g.nodes {
		if rec != nil && rec.alive {
			out = append(out, rec.id)
		}
	}
	return out
}

// IterEdges returns the ids of every live edge, sorted ascending.
// Complexity: O(E log E).
func (g *Graph[N, E]) IterEdges() []EdgeID {
	out := make([]EdgeID, 0, g.liveEdges)
	for _, rec := range g.edges {
		if rec != nil && rec.alive {
			out = append(out, rec.id)
		}
	}
	return out
}

// NodeCount returns the number of live nodes. Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return g.liveNodes }

// EdgeCount returns the number of live edges. Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return g.liveEdges }
