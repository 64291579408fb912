package storage

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// Classify derives t's storage class, implementing the five-rule decision
// table from the storage classifier's design (first match wins).
func Classify(t typesys.Type) Class {
	if t.ForceBox() {
		// Invariant 4: force_box == true ⇒ storage class is Box.
		return Box
	}

	switch t.Kind() {
	case typesys.KindProtocol, typesys.KindMultiProtocol, typesys.KindSomething,
		typesys.KindGenericVariable, typesys.KindLocalGenericVariable, typesys.KindCallable:
		return Box
	case typesys.KindSomeobject:
		if t.Optional() {
			return Box
		}
		return Scalar
	case typesys.KindClass:
		if c, ok := t.TypeDefinition().(*typesys.Class); ok && c != nil && c.BoxedByDefault {
			return Box
		}
		if !t.Optional() {
			return Scalar
		}
		// A class reference's own null pointer already encodes absence,
		// so an optional class instance still fits in one scalar word.
		return Scalar
	case typesys.KindEnum, typesys.KindValueType:
		if !t.Optional() {
			return Scalar
		}
		if payloadWords(t) <= simpleOptionalPayloadLimit {
			return SimpleOptional
		}
		return Box
	case typesys.KindError:
		return classifyError(t)
	default:
		return Scalar
	}
}

// classifyError implements rule 5: a Box unless both the ok-value and
// error-value sides of the payload are themselves Scalar.
func classifyError(t typesys.Type) Class {
	args := t.GenericArguments()
	if len(args) != 2 {
		// Payload not yet attached (bare sentinel Error()); default to
		// the safe, always-correct representation.
		return Box
	}
	if Classify(args[0]) == Scalar && Classify(args[1]) == Scalar {
		return Scalar
	}
	return Box
}

// payloadWords returns the raw field width (in machine words) of an Enum
// or ValueType definition, defaulting to a single discriminant/scalar word
// when the definition declares none explicitly.
func payloadWords(t typesys.Type) int {
	switch def := t.TypeDefinition().(type) {
	case *typesys.Enum:
		if def.FieldWords <= 0 {
			return 1
		}
		return def.FieldWords
	case *typesys.ValueType:
		if def.FieldWords <= 0 {
			return 1
		}
		return def.FieldWords
	default:
		return 1
	}
}

// Size returns the count of machine words t occupies in a scope or struct.
func Size(t typesys.Type) int {
	switch Classify(t) {
	case Box:
		return kBoxValueSize
	case SimpleOptional:
		return payloadWords(t) + 1 // +1 for the in-band presence flag
	default:
		return payloadWords(t)
	}
}

// BoxIdentifier returns the runtime tag distinguishing Nothingness, object
// references, and specific value types at run time.
func BoxIdentifier(t typesys.Type) BoxTag {
	switch t.Kind() {
	case typesys.KindClass, typesys.KindSomeobject:
		return TagObjectReference
	case typesys.KindEnum, typesys.KindValueType:
		return TagValueType
	case typesys.KindError:
		return TagError
	case typesys.KindCallable:
		return TagCallable
	case typesys.KindGenericVariable, typesys.KindLocalGenericVariable:
		return TagGeneric
	default:
		return TagNothingness
	}
}

// RemotelyStored reports whether t's payload would exceed the box's
// inline capacity and so must be stored behind a pointer:
// (size() > 3 && !optional()) || size() > 4.
func RemotelyStored(t typesys.Type) bool {
	sz := Size(t)
	return (sz > 3 && !t.Optional()) || sz > 4
}

// Unbox is the checked version of typesys.Type.UnforceBoxed: it clears the
// force-box flag and then verifies the type does not *inherently* require
// a box (i.e. Classify still yields Box once force_box no longer forces
// the answer). This is the split called for by the module layout: C1 owns
// the raw force-box bit, C2 owns "is it actually legal to drop it".
func Unbox(t typesys.Type) (typesys.Type, error) {
	unforced := t.UnforceBoxed()
	if Classify(unforced) == Box {
		return t, errBoxRequired(t)
	}
	return unforced, nil
}
