// Package loopcheck reports cycles in a finished netlist graph, the
// combinational-loop check a consumer runs once a Builder/Walker has
// produced a complete netlist.Graph. It never mutates the graph and only
// consumes it through its public node/edge iteration, so it can run as an
// independent post-processing pass.
//
// Grounded on CycleDetector.hpp (recursion-stack DFS, cycle canonicalised
// by rotating to its minimum-ID node) and dfs/cycle.go (three-colour
// marking, deterministic sorted output, dedup by canonical signature).
package loopcheck

import (
	"fmt"
	"sort"

	"github.com/jameshanlon/netlistgraph/netlist"
)

const (
	white = iota
	gray
	black
)

// DetectCycles returns the cycles closed by back edges of a single
// depth-first search of g, each expressed as the sequence of node ids
// forming it (closed: the first id repeats as the last), canonicalised by
// rotating to start at its minimum node id and sorted lexicographically by
// that sequence for a deterministic result. A graph with at least one cycle
// yields at least one, but not every simple cycle is reported: an edge into
// a node whose search has already finished closes no cycle, so a cycle
// reached that way is not listed.
func DetectCycles(g *netlist.Graph) ([][]netlist.NodeID, error) {
	if g == nil {
		return nil, nil
	}

	nodes := g.IterNodes()
	state := make(map[netlist.NodeID]int, len(nodes))
	seen := make(map[string]struct{})
	var cycles [][]netlist.NodeID

	var path []netlist.NodeID
	var visit func(id netlist.NodeID) error
	visit = func(id netlist.NodeID) error {
		state[id] = gray
		path = append(path, id)

		for _, edgeID := range g.OutEdges(id) {
			_, _, dst, ok := g.Edge(edgeID)
			if !ok {
				return fmt.Errorf("loopcheck: dangling edge %d from node %d", edgeID, id)
			}
			switch state[dst] {
			case white:
				if err := visit(dst); err != nil {
					return err
				}
			case gray:
				recordCycle(dst, path, seen, &cycles)
			}
		}

		path = path[:len(path)-1]
		state[id] = black
		return nil
	}

	for _, id := range nodes {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return lessSeq(cycles[i], cycles[j])
	})

	return cycles, nil
}

// recordCycle extracts the cycle closing at start from path, canonicalises
// it by rotating to its minimum-id node, and appends it to cycles if its
// signature has not been seen before.
func recordCycle(start netlist.NodeID, path []netlist.NodeID, seen map[string]struct{}, cycles *[][]netlist.NodeID) {
	idx := indexOf(path, start)
	base := append([]netlist.NodeID(nil), path[idx:]...)

	rotated := rotateToMin(base)
	closed := append(append([]netlist.NodeID(nil), rotated...), rotated[0])

	sig := signature(closed)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, closed)
}

func indexOf(path []netlist.NodeID, v netlist.NodeID) int {
	for i, x := range path {
		if x == v {
			return i
		}
	}
	return -1
}

// rotateToMin rotates base so that it starts at its smallest-id element,
// matching CycleDetector::detectCycles' min-ID canonicalisation.
func rotateToMin(base []netlist.NodeID) []netlist.NodeID {
	minIdx := 0
	for i, v := range base {
		if v < base[minIdx] {
			minIdx = i
		}
	}
	out := make([]netlist.NodeID, len(base))
	for i := range base {
		out[i] = base[(minIdx+i)%len(base)]
	}
	return out
}

func signature(closed []netlist.NodeID) string {
	return fmt.Sprint(closed)
}

func lessSeq(a, b []netlist.NodeID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
