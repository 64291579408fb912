package typesys

// Argument is one entry of a Function's parameter list.
type Argument struct {
	Name string
	Type Type
}

// Function is the contract-bearing unit the enforcer (pkg/contract) and
// reachability allocator (pkg/reachability) operate on. Its contract
// fields are set once at declaration; its runtime fields (VTI, Used,
// LinkingTableIndex) are mutated as reachability analysis and code
// generation proceed.
type Function struct {
	Name       string
	Position   SourcePosition
	Access     AccessLevel
	Final      bool
	Deprecated bool

	Arguments      []Argument
	ReturnType     Type
	GenericParams  int

	Pkg  *Package
	Def  TypeDefinition // nil for free functions

	// Super is the direct super-declaration this function overrides, if any.
	Super *Function
	// Overriders is every function that directly overrides this one.
	Overriders []*Function

	vti              int
	vtiProvider      VTIProvider
	used             bool
	linkingTableIdx  int
	hasLinkingIdx    bool
}

// NewFunction creates a Function with an unassigned VTI.
func NewFunction(name string, pos SourcePosition, access AccessLevel, args []Argument, ret Type) *Function {
	return &Function{
		Name: name, Position: pos, Access: access,
		Arguments: args, ReturnType: ret,
		vti: -1,
	}
}

// AddOverrider registers g as a direct overrider of f.
func (f *Function) AddOverrider(g *Function) {
	f.Overriders = append(f.Overriders, g)
	g.Super = f
}

// SetVTIProvider installs the allocator for f's method family. Calling
// this twice is an invariant violation (Reassign-Provider).
func (f *Function) SetVTIProvider(p VTIProvider) {
	if f.vtiProvider != nil {
		panicInvariant(ReassignProvider, "function %q already has a VTI provider", f.Name)
	}
	f.vtiProvider = p
}

// VTIProvider returns the installed allocator, or nil if none was set.
func (f *Function) VTIProvider() VTIProvider { return f.vtiProvider }

// Assigned reports whether f has been given a VTI (vti >= 0).
func (f *Function) Assigned() bool { return f.vti >= 0 }

// VTI returns f's virtual-table index. Calling this before AssignVTI is an
// invariant violation (Unassigned-VTI).
func (f *Function) VTI() int {
	if !f.Assigned() {
		panicInvariant(UnassignedVTI, "getting VTI from unassigned function %q", f.Name)
	}
	return f.vti
}

// setVTI assigns f's VTI. Calling this twice is an invariant violation
// (Reassign-VTI).
func (f *Function) setVTI(v int) {
	if f.Assigned() {
		panicInvariant(ReassignVTI, "cannot reassign VTI of function %q", f.Name)
	}
	f.vti = v
}

// AssignVTI lazily assigns f's VTI (and every overrider's) from f's
// provider, so that every implementation of the same virtual method
// family shares one slot. A no-op if f is already assigned.
func (f *Function) AssignVTI() {
	if f.Assigned() {
		return
	}
	if f.vtiProvider == nil {
		panicInvariant(UnassignedVTI, "function %q has no VTI provider", f.Name)
	}
	f.setVTI(f.vtiProvider.Next())
	f.propagateVTI()
}

// propagateVTI shares f's already-assigned slot with every transitive
// overrider. Overriders never carry their own provider for the family
// they override, so this assigns directly rather than recursing through
// AssignVTI (which would demand one).
func (f *Function) propagateVTI() {
	for _, g := range f.Overriders {
		if !g.Assigned() {
			g.setVTI(f.vti)
		}
		g.propagateVTI()
	}
}

// Used reports whether f has been marked reachable.
func (f *Function) Used() bool { return f.used }

// MarkUsed marks f used, notifies its provider, and transitively marks
// every direct overrider used — see pkg/reachability for the version of
// this that also enqueues f for code generation.
func (f *Function) MarkUsed() {
	if f.used {
		return
	}
	f.used = true
	if f.vtiProvider != nil {
		f.vtiProvider.NotifyUsed()
	}
	for _, g := range f.Overriders {
		g.MarkUsed()
	}
}

// SetLinkingTableIndex records f's stable index in the produced linking
// table. Set once per function by pkg/reachability.LinkingTable.
func (f *Function) SetLinkingTableIndex(idx int) {
	f.linkingTableIdx = idx
	f.hasLinkingIdx = true
}

// LinkingTableIndex returns f's linking table index and whether it has one.
func (f *Function) LinkingTableIndex() (int, bool) {
	return f.linkingTableIdx, f.hasLinkingIdx
}

// Type returns the Callable Type describing f's signature: first generic
// argument is the return type, the rest are parameter types — mirrors
// EmojicodeCompiler::Function::type().
func (f *Function) Type() Type {
	args := make([]Type, 0, len(f.Arguments)+1)
	args = append(args, f.ReturnType)
	for _, a := range f.Arguments {
		args = append(args, a.Type)
	}
	t := CallableIncomplete(false)
	t.genericArguments = args
	return t
}
