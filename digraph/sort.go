package digraph

import "sort"

// sortEdgeIDs sorts ids ascending in place; NodeID/EdgeID ordering mirrors
// creation order since both are monotonically increasing counters.
func sortEdgeIDs(ids []EdgeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
