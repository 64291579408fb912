package typesys

// TypeContext carries the information needed to resolve generic variables
// and to stringify types meaningfully: the callee's own (possibly generic)
// type, the generic arguments that specialize it, and — when compiling
// inside a generic function body — that function and its own generic
// arguments.
type TypeContext struct {
	// CalleeType is the type on which the current function is being
	// compiled, e.g. the Class a method belongs to. Its Kind's
	// definition is the "resolution constraint" an ordinary
	// GenericVariable resolves against.
	CalleeType Type
	// CalleeTypeArguments are CalleeType's own generic substitutions, in
	// definition slot order.
	CalleeTypeArguments []Type
	// Function is set while compiling a generic function body; a
	// LocalGenericVariable resolves against it.
	Function *Function
	// FunctionGenericArguments are Function's own generic substitutions.
	FunctionGenericArguments []Type
}

// HasCalleeType reports whether tc carries a real callee type (as opposed
// to the zero TypeContext used outside any type/function context).
func (tc TypeContext) HasCalleeType() bool {
	return tc.CalleeType.kind.hasDefinition() || tc.CalleeType.kind == KindGenericVariable
}

// CanResolve reports whether constraint — the resolution constraint
// carried by a GenericVariable — can be resolved against tc.CalleeType.
// Exported wrapper around canBeUsedToResolve for pkg/generics.
func (tc TypeContext) CanResolve(constraint TypeDefinition) bool {
	return tc.canBeUsedToResolve(constraint)
}

// canBeUsedToResolve reports whether constraint — the resolution
// constraint carried by a GenericVariable — matches tc.CalleeType's own
// definition, or a supertype of it that can still resolve the slot
// (Class inheritance: a GenericVariable declared on a superclass resolves
// through a subclass's callee type too).
func (tc TypeContext) canBeUsedToResolve(constraint TypeDefinition) bool {
	if !tc.HasCalleeType() {
		return false
	}
	def := tc.CalleeType.TypeDefinition()
	if def == nil {
		return false
	}
	if def == constraint {
		return true
	}
	if c, ok := def.(*Class); ok {
		if wantClass, ok := constraint.(*Class); ok {
			return c.IsSubclassOf(wantClass)
		}
	}
	return false
}
