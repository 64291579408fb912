package typesys

// kBoxValueSize is the number of machine words a Box envelope occupies,
// regardless of payload — see pkg/storage for its use in size/footprint
// calculations.
const kBoxValueSize = 4

// Type is the tagged value describing every type occurrence in a typed
// AST. It is an immutable value: all mutator-shaped methods (With*,
// ForceBoxed, ...) return a new Type rather than modifying the receiver,
// so that a Function's signature stays persistently hashable even after
// the contract enforcer rewrites a return type's force-box flag (design
// notes, "model as a rebuild returning a new Type").
type Type struct {
	kind Kind

	definition TypeDefinition // set for Class/Protocol/Enum/ValueType/Extension

	genericArgumentIndex int            // set for GenericVariable/LocalGenericVariable
	genericConstraintDef TypeDefinition // resolution constraint for an ordinary generic variable
	genericConstraintFn  *Function      // resolution constraint for a local generic variable

	genericArguments []Type // MultiProtocol members, Callable(ret,args...), or ordinary generic substitutions

	optional  bool
	meta      bool
	reference bool
	mutable   bool
	forceBox  bool
}

// NewClassType creates a Type wrapping a Class instance.
func NewClassType(c *Class, optional bool) Type {
	return Type{kind: KindClass, definition: c, optional: optional, mutable: true}
}

// NewProtocolType creates a Type wrapping a Protocol instance.
func NewProtocolType(p *Protocol, optional bool) Type {
	return Type{kind: KindProtocol, definition: p, optional: optional, mutable: true}
}

// NewEnumType creates a Type wrapping an Enum instance.
func NewEnumType(e *Enum, optional bool) Type {
	return Type{kind: KindEnum, definition: e, optional: optional, mutable: true}
}

// NewValueTypeType creates a Type wrapping a ValueType instance.
func NewValueTypeType(v *ValueType, optional bool) Type {
	return Type{kind: KindValueType, definition: v, optional: optional, mutable: true}
}

// NewExtensionType creates a Type referring to an Extension declaration.
func NewExtensionType(x *Extension) Type {
	return Type{kind: KindExtension, definition: x, mutable: true}
}

// NewGenericVariable creates a generic variable resolved against a
// type-definition's generic parameter list.
func NewGenericVariable(optional bool, index int, constraint TypeDefinition) Type {
	return Type{kind: KindGenericVariable, genericArgumentIndex: index, genericConstraintDef: constraint,
		optional: optional, mutable: true}
}

// NewLocalGenericVariable creates a generic variable resolved against a
// function's own generic parameter list.
func NewLocalGenericVariable(optional bool, index int, fn *Function) Type {
	return Type{kind: KindLocalGenericVariable, genericArgumentIndex: index, genericConstraintFn: fn,
		optional: optional, mutable: true}
}

// NewMultiProtocol creates an intersection type over protocols, sorting
// the members immediately so identity is well-defined (invariant 1).
func NewMultiProtocol(protocols []Type, optional bool) Type {
	t := Type{kind: KindMultiProtocol, genericArguments: append([]Type(nil), protocols...), optional: optional, mutable: true}
	t.sortMultiProtocolMembers()
	return t
}

// Something returns the universal top type.
func Something(optional bool) Type { return Type{kind: KindSomething, optional: optional, mutable: true} }

// Someobject returns the top type for class instances.
func Someobject(optional bool) Type { return Type{kind: KindSomeobject, optional: optional, mutable: true} }

// NoReturn returns the bottom type of a function that never returns.
func NoReturn() Type { return Type{kind: KindNoReturn, mutable: true} }

// ErrorType returns the two-variant (ok value | error value) sentinel type.
func ErrorType() Type { return Type{kind: KindError, mutable: true} }

// CallableIncomplete returns an incomplete Callable type (no signature
// attached yet); callers fill genericArguments via WithGenericArguments or
// by using Function.Type().
func CallableIncomplete(optional bool) Type {
	return Type{kind: KindCallable, optional: optional, mutable: true}
}

// Kind returns the tag of t.
func (t Type) Kind() Kind { return t.kind }

// requireKind panics with Kind-Mismatch if t.kind != want.
func (t Type) requireKind(want Kind) {
	if t.kind != want {
		panicInvariant(KindMismatch, "expected %s, got %s", want, t.kind)
	}
}

// Class returns the wrapped Class. Panics (Kind-Mismatch) if t is not a Class.
func (t Type) Class() *Class {
	t.requireKind(KindClass)
	return t.definition.(*Class)
}

// Protocol returns the wrapped Protocol. Panics (Kind-Mismatch) otherwise.
func (t Type) Protocol() *Protocol {
	t.requireKind(KindProtocol)
	return t.definition.(*Protocol)
}

// Enum returns the wrapped Enum. Panics (Kind-Mismatch) otherwise.
func (t Type) Enum() *Enum {
	t.requireKind(KindEnum)
	return t.definition.(*Enum)
}

// EValueType returns the wrapped ValueType. Panics (Kind-Mismatch) otherwise.
func (t Type) EValueType() *ValueType {
	t.requireKind(KindValueType)
	return t.definition.(*ValueType)
}

// Extension returns the wrapped Extension. Panics (Kind-Mismatch) otherwise.
func (t Type) Extension() *Extension {
	t.requireKind(KindExtension)
	return t.definition.(*Extension)
}

// TypeDefinition returns the non-owning definition link for any named
// kind, or nil if t's kind does not carry one.
func (t Type) TypeDefinition() TypeDefinition {
	if !t.kind.hasDefinition() {
		return nil
	}
	return t.definition
}

// GenericVariableIndex returns the generic slot index. Panics
// (Kind-Mismatch) if t is not a GenericVariable or LocalGenericVariable.
func (t Type) GenericVariableIndex() int {
	if !t.kind.isGenericVariableKind() {
		panicInvariant(KindMismatch, "expected a generic variable kind, got %s", t.kind)
	}
	return t.genericArgumentIndex
}

// GenericConstraintDefinition returns the type-definition resolution
// constraint of an ordinary GenericVariable, or nil.
func (t Type) GenericConstraintDefinition() TypeDefinition {
	if t.kind != KindGenericVariable {
		return nil
	}
	return t.genericConstraintDef
}

// GenericConstraintFunction returns the function resolution constraint of
// a LocalGenericVariable, or nil.
func (t Type) GenericConstraintFunction() *Function {
	if t.kind != KindLocalGenericVariable {
		return nil
	}
	return t.genericConstraintFn
}

// GenericArguments returns the ordered substitution list (or MultiProtocol
// members, or Callable(return, ...params)).
func (t Type) GenericArguments() []Type { return t.genericArguments }

// Protocols is an alias for GenericArguments on a MultiProtocol, reading
// more naturally at call sites that only care about conformance.
func (t Type) Protocols() []Type {
	t.requireKind(KindMultiProtocol)
	return t.genericArguments
}

// WithGenericArgument returns a copy of t with genericArguments[index]
// replaced by value. index must be < len(t.GenericArguments()).
func (t Type) WithGenericArgument(index int, value Type) Type {
	if index >= len(t.genericArguments) {
		panicInvariant(KindMismatch, "generic argument index %d out of range (len %d)", index, len(t.genericArguments))
	}
	next := append([]Type(nil), t.genericArguments...)
	next[index] = value
	t.genericArguments = next
	return t
}

// WithGenericArguments returns a copy of t with its whole generic
// argument list replaced — used to build ordinary generic specializations
// and Callable signatures from scratch.
func (t Type) WithGenericArguments(args []Type) Type {
	t.genericArguments = append([]Type(nil), args...)
	if t.kind == KindMultiProtocol {
		t.sortMultiProtocolMembers()
	}
	return t
}

// CanHaveGenericArguments reports whether t's kind can carry generic
// substitutions at all (ordinary generics on Class/ValueType/Enum/Protocol,
// plus MultiProtocol and Callable which use the slice for other purposes).
func (t Type) CanHaveGenericArguments() bool {
	switch t.kind {
	case KindClass, KindValueType, KindEnum, KindProtocol, KindMultiProtocol, KindCallable:
		return true
	default:
		return false
	}
}

// CanHaveProtocol reports whether t's kind may declare protocol conformance.
func (t Type) CanHaveProtocol() bool {
	return t.kind == KindValueType || t.kind == KindClass || t.kind == KindEnum
}

// AllowsMetaType reports whether t's kind supports a type-object (meta) form.
func (t Type) AllowsMetaType() bool {
	switch t.kind {
	case KindClass, KindValueType, KindEnum, KindProtocol:
		return true
	default:
		return false
	}
}

// Optional reports whether t may carry the "no value" sentinel.
func (t Type) Optional() bool { return t.optional }

// WithOptional returns a copy of t with its optional flag set to o.
func (t Type) WithOptional(o bool) Type { t.optional = o; return t }

// Meta reports whether t represents the type-object itself.
func (t Type) Meta() bool { return t.meta }

// WithMeta returns a copy of t with its meta flag set to m. Panics
// (Kind-Mismatch) if m is true and t's kind does not AllowsMetaType.
func (t Type) WithMeta(m bool) Type {
	if m && !t.AllowsMetaType() {
		panicInvariant(KindMismatch, "kind %s does not allow a meta type", t.kind)
	}
	t.meta = m
	return t
}

// Reference reports whether t's runtime representation is a pointer to
// the underlying value.
func (t Type) Reference() bool { return t.reference }

// WithReference returns a copy of t with its reference flag set to r.
func (t Type) WithReference(r bool) Type { t.reference = r; return t }

// Mutable reports whether writes through a binding of this type are permitted.
func (t Type) Mutable() bool { return t.mutable }

// WithMutable returns a copy of t with its mutable flag set to m.
func (t Type) WithMutable(m bool) Type { t.mutable = m; return t }

// ForceBox reports whether t overrides the storage classifier to always
// box, even when the kind would otherwise be scalar (invariant 4: implies
// storage class Box, enforced by pkg/storage's classifier).
func (t Type) ForceBox() bool { return t.forceBox }

// ForceBoxed returns a copy of t with its force-box flag set.
func (t Type) ForceBoxed() Type { t.forceBox = true; return t }

// UnforceBoxed returns a copy of t with its force-box flag cleared. Unlike
// the original's unbox(), this does not itself check requiresBox() — that
// legality check belongs to the storage classifier, since it depends on
// kind-level storage rules (pkg/storage.Unbox performs the checked
// version of this operation).
func (t Type) UnforceBoxed() Type { t.forceBox = false; return t }

// IsReferencable reports whether passing this value by reference (instead
// of by copy) makes sense: value types and enums, never classes (already
// reference-scalar) or protocols/generics (already boxed).
func (t Type) IsReferencable() bool {
	switch t.kind {
	case KindValueType, KindEnum:
		return true
	default:
		return false
	}
}

// CallableReturn returns the return type of a Callable Type (generic
// argument 0). Panics (Kind-Mismatch) if t is not Callable or has no
// signature attached yet.
func (t Type) CallableReturn() Type {
	t.requireKind(KindCallable)
	if len(t.genericArguments) == 0 {
		panicInvariant(KindMismatch, "callable type has no signature attached")
	}
	return t.genericArguments[0]
}

// CallableParameters returns the parameter types of a Callable Type
// (generic arguments 1..n).
func (t Type) CallableParameters() []Type {
	t.requireKind(KindCallable)
	if len(t.genericArguments) == 0 {
		return nil
	}
	return t.genericArguments[1:]
}

// Equal is the context-free structural identity check from invariant 6:
// two Types are identical iff they match on kind, optional, meta,
// definition reference, and all generic arguments are pairwise identical
// recursively. It does not resolve generic variables; it compares them by
// (constraint, index). pkg/compat.IdenticalTo differs from it in letting a
// CommonTypeFinder unify two generic variables.
func (t Type) Equal(o Type) bool {
	if t.kind != o.kind || t.optional != o.optional || t.meta != o.meta {
		return false
	}
	if t.kind.hasDefinition() && t.definition != o.definition {
		return false
	}
	if t.kind.isGenericVariableKind() {
		if t.genericArgumentIndex != o.genericArgumentIndex {
			return false
		}
		if t.kind == KindGenericVariable && t.genericConstraintDef != o.genericConstraintDef {
			return false
		}
		if t.kind == KindLocalGenericVariable && t.genericConstraintFn != o.genericConstraintFn {
			return false
		}
	}
	if len(t.genericArguments) != len(o.genericArguments) {
		return false
	}
	for i := range t.genericArguments {
		if !t.genericArguments[i].Equal(o.genericArguments[i]) {
			return false
		}
	}
	return true
}

// sortMultiProtocolMembers sorts genericArguments by the total order on
// protocol identity (kind, optional, meta, definition — mirrors
// Type::operator< in the original).
func (t *Type) sortMultiProtocolMembers() {
	members := t.genericArguments
	for i := 1; i < len(members); i++ {
		for j := i; j > 0 && protocolLess(members[j], members[j-1]); j-- {
			members[j], members[j-1] = members[j-1], members[j]
		}
	}
}

// protocolLess implements the total order used to sort MultiProtocol
// members and to compare protocol identity generally.
func protocolLess(a, b Type) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.optional != b.optional {
		return !a.optional && b.optional
	}
	if a.meta != b.meta {
		return !a.meta && b.meta
	}
	return definitionLess(a.definition, b.definition)
}

// definitionLess orders two definitions by name then pointer identity, so
// the order is total even across distinct packages with same-named types.
func definitionLess(a, b TypeDefinition) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if a.Name() != b.Name() {
		return a.Name() < b.Name()
	}
	return fmtPointer(a) < fmtPointer(b)
}
