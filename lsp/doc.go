// File: doc.go
// Role: documents Extract's lvalue-flag and current-LSP propagation rules.
package lsp

// Invariants:
//
//   - Every OnReference callback's bounds come from EvalContext.Bounds,
//     falling back to the symbol's full width only when the context cannot
//     determine a narrower range.
//   - isLValue is never propagated into a selector or into the base of a
//     handle-typed member access; it is carried unchanged through
//     conversions and constant-select chains.
