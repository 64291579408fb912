package typesys

import "fmt"

// InvariantErrorKind names a compiler-bug-grade invariant violation. These
// are never recovered inside this module; they indicate a caller asked a
// Type or Function to do something the data model forbids.
type InvariantErrorKind int

const (
	// KindMismatch is raised when a projection accessor (Class(), Protocol(),
	// ...) is called on a Type of the wrong Kind.
	KindMismatch InvariantErrorKind = iota
	// BoxRequired names an illegal unbox of a type whose kind requires a
	// box. Nothing panics with it: pkg/storage.Unbox reports that case as a
	// returned *storage.BoxRequiredError instead.
	BoxRequired
	// UnassignedVTI is raised by VTI() on a Function that was never assigned one.
	UnassignedVTI
	// ReassignVTI is raised when a Function that already holds a VTI is
	// given another one; AssignVTI on an assigned Function is a no-op and
	// does not raise it.
	ReassignVTI
	// ReassignProvider is raised by a second call to SetVTIProvider.
	ReassignProvider
)

func (k InvariantErrorKind) String() string {
	switch k {
	case KindMismatch:
		return "Kind-Mismatch"
	case BoxRequired:
		return "Box-Required"
	case UnassignedVTI:
		return "Unassigned-VTI"
	case ReassignVTI:
		return "Reassign-VTI"
	case ReassignProvider:
		return "Reassign-Provider"
	default:
		return "InvariantError"
	}
}

// InvariantError is panicked, never returned, per the compile-time-error
// vs. invariant-violation split in the design: these indicate a bug in the
// compiler itself, not a user's program.
type InvariantError struct {
	Kind    InvariantErrorKind
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func panicInvariant(kind InvariantErrorKind, format string, args ...interface{}) {
	panic(&InvariantError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}
