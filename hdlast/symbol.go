// Package hdlast is the AST query surface the core consumes, standing in
// for a real elaborator (out of scope per the core's own contract). It
// defines value symbols, expressions, statements, ports and a constant
// evaluation context, plus a small hand-built Design/Module construction
// API used by tests.
//
// Grounded on netlist/*.hpp headers (ProceduralAnalysis.hpp,
// NetlistVisitor.cpp's symbol/port handling, LSPUtilities.hpp), translated
// from slang's AST types into the minimal surface the core actually
// queries.
package hdlast

import "github.com/jameshanlon/netlistgraph/bitrange"

// SymbolKind discriminates the flavour of a value symbol.
type SymbolKind int

const (
	KindVariable SymbolKind = iota
	KindNet
	KindPort
	KindModportPort
)

func (k SymbolKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindNet:
		return "net"
	case KindPort:
		return "port"
	case KindModportPort:
		return "modport-port"
	default:
		return "unknown"
	}
}

// ValueSymbol is a named, bit-addressable storage location: a variable, a
// net, or the internal value behind a port. Identity is pointer identity;
// two ValueSymbols with the same Name are distinct unless they are the
// same *ValueSymbol.
type ValueSymbol struct {
	Name  string
	Path  string // hierarchical path, for diagnostics and DOT rendering
	Width uint64
	Kind  SymbolKind

	// PortBackrefs lists the output ports, if any, whose internal value is
	// this symbol. The original only supports a single back-reference per
	// symbol; hookupOutputPort's source leaves a second back-reference
	// unsupported, and this core's builder keeps that limitation (logs and
	// skips rather than hooking up a second port).
	PortBackrefs []*PortSymbol

	// ModportRef is populated when Kind is KindModportPort: it is the
	// modport port definition this symbol stands for, whose Connection
	// expression the builder chases to find the underlying interface
	// variable(s).
	ModportRef *ModportPort
}

func (s *ValueSymbol) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Path != "" {
		return s.Path
	}
	return s.Name
}

// Bounds returns the full bit range [0, Width-1] of s.
func (s *ValueSymbol) Bounds() bitrange.Range {
	if s.Width == 0 {
		return bitrange.New(0, 0)
	}
	return bitrange.New(0, s.Width-1)
}

// Direction is a port's signal direction.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
	DirInOut
)

// PortSymbol is a module port: its direction and the internal value it
// connects to within the module body.
type PortSymbol struct {
	Name     string
	Dir      Direction
	Internal *ValueSymbol
}

func (p *PortSymbol) IsInput() bool  { return p.Dir == DirInput || p.Dir == DirInOut }
func (p *PortSymbol) IsOutput() bool { return p.Dir == DirOutput || p.Dir == DirInOut }

// ModportPort is an interface modport's named port: referencing it is
// equivalent to referencing the connection expression through zero or more
// nested modports, terminating at a plain interface variable.
type ModportPort struct {
	Name       string
	Connection Expression
}
