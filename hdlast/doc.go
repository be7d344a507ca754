// File: doc.go
// Role: documents the scope and limits of the hand-built construction API.
package hdlast

// The constructors in this package (NewDesign, the Module/Instance literal
// forms) build an already-elaborated tree directly; they are not a parser
// and perform no name resolution, type-checking or constant folding of
// their own. Callers supply symbols, bounds and constant facts explicitly
// (see StaticEvalContext), exactly mirroring the "assumed to deliver a
// validated AST" boundary the core's consumers sit behind.
