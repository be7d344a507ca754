// File: doc.go
// Role: documents Tracker's overlap-resolution and query contract.
package drivers

// Invariants:
//
//   - After any sequence of Add/Merge calls, a symbol's stored intervals
//     are pairwise disjoint and span exactly the union of bit ranges ever
//     passed to Add/Merge for that symbol.
//   - Every driverstore.Handle held by a Tracker's interval maps addresses
//     a live slot in that same Tracker's store; Clone never leaves a
//     dangling handle.
//   - Get's containment policy is inclusive: a stored interval contributes
//     its drivers to a query if either fully contains the other. A partial,
//     non-containing overlap contributes nothing.
