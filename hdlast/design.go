package hdlast

// EdgeKind is the clock-edge sensitivity of a procedural block's timing
// control, or None for combinational/unclocked.
type EdgeKind int

const (
	EdgeNone EdgeKind = iota
	EdgePos
	EdgeNeg
)

// TimingControl is a procedural block's sensitivity list.
type TimingControl interface {
	isTimingControl()
}

// SignalEventControl is `@(posedge clk)` / `@(negedge clk)` / `@(clk)`.
type SignalEventControl struct {
	Signal Expression
	Edge   EdgeKind
}

func (*SignalEventControl) isTimingControl() {}

// EventListControl is `@(posedge clk or negedge rst_n)`-style multi-signal
// sensitivity.
type EventListControl struct {
	Events []*SignalEventControl
}

func (*EventListControl) isTimingControl() {}

// ProceduralBlockKind is the keyword that introduced a procedural block.
type ProceduralBlockKind int

const (
	KindAlwaysComb ProceduralBlockKind = iota
	KindAlwaysFF
	KindAlways
	KindAlwaysLatch
	KindInitial
	KindFinal
)

// ModuleMember is any direct member of a Module or GenerateBlock body.
type ModuleMember interface {
	isModuleMember()
}

// ProceduralBlock is an `always`/`always_ff`/`always_comb`/`initial` block.
type ProceduralBlock struct {
	Kind   ProceduralBlockKind
	Timing TimingControl // nil for always_comb/initial/final
	Body   Statement
}

func (*ProceduralBlock) isModuleMember() {}

// ContinuousAssign is `assign lhs = rhs;`.
type ContinuousAssign struct {
	LHS, RHS Expression
}

func (*ContinuousAssign) isModuleMember() {}

// PortConnection binds one of an instance's ports to an expression in the
// instantiating scope.
type PortConnection struct {
	Port *PortSymbol
	Expr Expression
}

// InterfacePortConnection binds an instance's interface port to a modport
// reference in the instantiating scope.
type InterfacePortConnection struct {
	Name string
	Ref  *ModportPort
}

// Instance is a module instantiation.
type Instance struct {
	Name           string
	Module         *Module
	Uninstantiated bool
	Connections    []PortConnection
	InterfaceConns []InterfacePortConnection
}

func (*Instance) isModuleMember() {}

// VariableDecl declares a plain variable member (used by interface bodies;
// see the walker's "Variable symbol inside an interface" dispatch).
type VariableDecl struct {
	Symbol        *ValueSymbol
	InterfaceBody bool
}

func (*VariableDecl) isModuleMember() {}

// GenerateBlock is a `generate`/`for`/`if` generate region; its members are
// only live (walked) when Instantiated is true.
type GenerateBlock struct {
	Instantiated bool
	Members      []ModuleMember
}

func (*GenerateBlock) isModuleMember() {}

// Module is a module (or interface) definition: its ports and body
// members.
type Module struct {
	Name        string
	IsInterface bool
	Ports       []*PortSymbol
	Members     []ModuleMember
}

// Design is the top-level elaborated design: a set of module definitions
// rooted at a top instance, built entirely by hand (see NewDesign and the
// Module/Instance struct literals) in place of a real HDL front end.
type Design struct {
	Top *Instance
}

// NewDesign wraps top as the root of an elaborated design.
func NewDesign(top *Instance) *Design {
	return &Design{Top: top}
}
