// Package netlistgraph builds a netlist graph: a directed, data-flow
// representation of an elaborated hardware design.
//
// From a type-checked, elaborated AST of a register-transfer-level hardware
// description (see hdlast), the packages in this module produce a graph
// (see netlist) whose vertices are ports, assignment operations, conditional
// branches, case selectors, merge junctions and sequential state cells, and
// whose edges carry bit-range-annotated data-flow dependencies between them.
//
// Package layout, leaves first:
//
//	bitrange     - (lo, hi) closed bit-index intervals
//	digraph      - generic directed graph with stable node/edge identity
//	intervalmap  - non-overlapping ranged key -> value map
//	driverstore  - handle-addressed arena of driver lists
//	drivers      - per-symbol driver tracker built on intervalmap+driverstore
//	hdlast       - the AST query surface the core consumes
//	lsp          - longest-static-prefix expression visitor
//	netlist      - node/edge types, data-flow analysis, builder, AST walker
//	loopcheck    - combinational-loop detection over a finished graph
//	pathquery    - path queries over a finished graph
//	netlistdot   - textual DOT rendering
//
// The core (digraph through netlist) is single-threaded: every operation is
// synchronous, there are no suspension points, and no locking is required or
// provided. Consumers such as loopcheck and pathquery run only after a
// netlist.Graph is finalized, against an otherwise-immutable structure.
package netlistgraph
