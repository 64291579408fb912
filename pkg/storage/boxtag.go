// Package storage implements the storage classifier (C2): it maps a
// resolved typesys.Type to a storage class, a memory footprint, a runtime
// box tag, and whether a value's payload must live behind a pointer
// (remote storage). Grounded on EmojicodeCompiler/Types/Type.hpp's
// storageType()/size()/boxIdentifier()/remotelyStored(), with the
// closed-enum-plus-String() idiom borrowed from the teacher's
// pkg/vm/stackitem.Type.
package storage

// BoxTag is the runtime-level discriminant distinguishing Nothingness, an
// object reference, and specific value type families inside a Box
// envelope. Mirrors pkg/vm/stackitem.Type's shape (a small closed enum
// with String/Parse).
type BoxTag int

const (
	// TagNothingness marks an absent optional value.
	TagNothingness BoxTag = iota
	// TagObjectReference marks a boxed class instance.
	TagObjectReference
	// TagValueType marks a boxed value type or enum payload.
	TagValueType
	// TagError marks a boxed two-variant error payload.
	TagError
	// TagCallable marks a boxed function value.
	TagCallable
	// TagGeneric marks a box whose payload's concrete type is not known
	// until the generic variable is resolved.
	TagGeneric
)

var boxTagNames = [...]string{
	TagNothingness:     "Nothingness",
	TagObjectReference: "ObjectReference",
	TagValueType:       "ValueType",
	TagError:           "Error",
	TagCallable:        "Callable",
	TagGeneric:         "Generic",
}

// String renders the tag's name.
func (b BoxTag) String() string {
	if int(b) < 0 || int(b) >= len(boxTagNames) {
		return "Unknown"
	}
	return boxTagNames[b]
}

// ParseBoxTag recovers a BoxTag from its String() form.
func ParseBoxTag(s string) (BoxTag, bool) {
	for i, name := range boxTagNames {
		if name == s {
			return BoxTag(i), true
		}
	}
	return 0, false
}
