// Package pathquery finds a path between two nodes of a finished netlist
// graph: a single depth-first traversal from start builds a one-parent-per-
// node traversal map, and Find walks that map backward from end to
// reconstruct the path (or reports no path exists).
//
// Grounded on PathFinder.hpp (DFS building a child-to-parent map, buildPath
// walking it backward and reversing) and the bfs package's parent-map
// idiom, adapted from BFS to a DFS single-parent tree since
// existence/reconstruction, not shortest distance, is all that is
// required.
package pathquery

import "github.com/jameshanlon/netlistgraph/netlist"

// Find returns the path from start to end as an ordered slice of node ids
// (inclusive of both ends), or ok=false if no path exists. A disabled edge
// (see netlist.EdgeLabel.Disabled) is never traversed.
func Find(g *netlist.Graph, start, end netlist.NodeID) (path []netlist.NodeID, ok bool) {
	if g == nil {
		return nil, false
	}

	parent := buildTraversalMap(g, start)

	if start == end {
		return []netlist.NodeID{start}, true
	}
	if _, reached := parent[end]; !reached {
		return nil, false
	}

	var rev []netlist.NodeID
	node := end
	rev = append(rev, node)
	for node != start {
		p, reached := parent[node]
		if !reached {
			return nil, false
		}
		node = p
		rev = append(rev, node)
	}

	out := make([]netlist.NodeID, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out, true
}

// buildTraversalMap runs a single DFS from start and records, for every
// node reached, the node it was first reached from. Since a DFS tree gives
// each node at most one parent, this map alone is enough to reconstruct
// any path back to start.
func buildTraversalMap(g *netlist.Graph, start netlist.NodeID) map[netlist.NodeID]netlist.NodeID {
	parent := make(map[netlist.NodeID]netlist.NodeID)
	visited := map[netlist.NodeID]bool{start: true}

	var visit func(id netlist.NodeID)
	visit = func(id netlist.NodeID) {
		for _, edgeID := range g.OutEdges(id) {
			label, _, dst, ok := g.Edge(edgeID)
			if !ok || label.Disabled || visited[dst] {
				continue
			}
			visited[dst] = true
			parent[dst] = id
			visit(dst)
		}
	}
	visit(start)
	return parent
}
