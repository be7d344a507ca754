// File: doc.go
// Role: package-level overview of digraph's contract and invariants.
package digraph

// Invariants maintained by Graph:
//
//   - Every edge's endpoints are currently-live nodes.
//   - IterOutEdges(n) for an edge targeting m is consistent with
//     IterInEdges(m) containing the symmetric edge id.
//   - AddEdge is idempotent: adding an edge that already exists between the
//     same (source, target) returns the existing id and never creates a
//     second edge (no multi-edges).
//   - Node and edge equality is identity equality by id.
