// Package typesys implements the tagged Type value at the center of the
// compiler: every type occurrence in a typed AST — class, protocol,
// multi-protocol, enum, value type, generic variable, callable, and the
// handful of sentinel kinds needed for "maybe anything", "any object", and
// "never returns" — is represented as one immutable Type value.
package typesys

// Kind tags the content of a Type. It mirrors EmojicodeCompiler::TypeType
// from the original implementation.
type Kind int

const (
	// KindClass is a named reference-type instance.
	KindClass Kind = iota
	// KindProtocol is a structural interface.
	KindProtocol
	// KindMultiProtocol is an intersection of several protocols.
	KindMultiProtocol
	// KindEnum is a named value-type enumeration.
	KindEnum
	// KindValueType is a named, non-enum value type.
	KindValueType
	// KindCallable is a function type: first generic argument is the
	// return type, the rest are parameter types.
	KindCallable
	// KindGenericVariable names a slot on a type-definition's generic
	// parameter list.
	KindGenericVariable
	// KindLocalGenericVariable names a slot on a function's own generic
	// parameter list.
	KindLocalGenericVariable
	// KindSomeobject is "any object", the top type for class instances.
	KindSomeobject
	// KindSomething is the universal top type.
	KindSomething
	// KindNoReturn is the bottom type of a function that never returns.
	KindNoReturn
	// KindError is a two-variant (ok value | error value) payload.
	KindError
	// KindExtension is a type extension declaration.
	KindExtension
	// KindStorageExpectation is a sentinel kind for describing the storage
	// shape a destination expects (reference/force-box/mutable) without
	// naming a concrete type. No constructor in this package produces it;
	// String renders it as ❔.
	KindStorageExpectation
)

// String renders the kind's name, used in diagnostics and panics.
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindProtocol:
		return "Protocol"
	case KindMultiProtocol:
		return "MultiProtocol"
	case KindEnum:
		return "Enum"
	case KindValueType:
		return "ValueType"
	case KindCallable:
		return "Callable"
	case KindGenericVariable:
		return "GenericVariable"
	case KindLocalGenericVariable:
		return "LocalGenericVariable"
	case KindSomeobject:
		return "Someobject"
	case KindSomething:
		return "Something"
	case KindNoReturn:
		return "NoReturn"
	case KindError:
		return "Error"
	case KindExtension:
		return "Extension"
	case KindStorageExpectation:
		return "StorageExpectation"
	default:
		return "Unknown"
	}
}

// hasDefinition reports whether k is one of the kinds that carry a
// definition reference.
func (k Kind) hasDefinition() bool {
	switch k {
	case KindClass, KindProtocol, KindEnum, KindValueType, KindExtension:
		return true
	default:
		return false
	}
}

// HasDefinition reports whether k is one of the named kinds that carry a
// definition reference (Class/Protocol/Enum/ValueType/Extension).
func (k Kind) HasDefinition() bool { return k.hasDefinition() }

// isGenericVariableKind reports whether k is one of the two generic
// variable kinds (invariant 2 requires exactly one of them to hold a
// matching constraint).
func (k Kind) isGenericVariableKind() bool {
	return k == KindGenericVariable || k == KindLocalGenericVariable
}

// IsGenericVariableKind reports whether k is GenericVariable or
// LocalGenericVariable.
func (k Kind) IsGenericVariableKind() bool { return k.isGenericVariableKind() }
