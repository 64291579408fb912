// Package compat implements the compatibility & identity component (C4):
// subtype compatibility (including protocol conformance, multi-protocol,
// and callable variance) and the structural identity used to compare
// generic specializations. Grounded on EmojicodeCompiler::Type's
// compatibleTo/identicalTo.
package compat

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// CompatibleTo returns true when a value of from can be supplied where to
// is expected, implementing the first-match-wins decision table from the
// compatibility component's design. ctf may be nil; when non-nil, it
// receives contributions from any generic-variable unification performed
// along the way (rule 9).
func CompatibleTo(from, to typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	switch to.Kind() {
	case typesys.KindSomething:
		return true
	case typesys.KindSomeobject:
		if !optionalOK(from, to) {
			return false
		}
		return from.Kind() == typesys.KindClass || from.Kind() == typesys.KindSomeobject
	case typesys.KindClass:
		if !optionalOK(from, to) {
			return false
		}
		return compatibleToClass(from, to, tc, ctf)
	case typesys.KindProtocol:
		if !optionalOK(from, to) {
			return false
		}
		return conformsToProtocol(from, to, tc, ctf)
	case typesys.KindMultiProtocol:
		if !optionalOK(from, to) {
			return false
		}
		for _, member := range to.Protocols() {
			if !conformsToProtocol(from, member, tc, ctf) {
				return false
			}
		}
		return true
	case typesys.KindCallable:
		if !optionalOK(from, to) {
			return false
		}
		return compatibleToCallable(from, to, tc, ctf)
	case typesys.KindEnum, typesys.KindValueType:
		if !optionalOK(from, to) {
			return false
		}
		if from.Kind() != to.Kind() || from.TypeDefinition() != to.TypeDefinition() {
			return false
		}
		return identicalGenericArguments(from, to, tc, ctf)
	case typesys.KindGenericVariable, typesys.KindLocalGenericVariable:
		return compatibleGenericVariableFallback(from, to, ctf)
	default:
		return from.Equal(to)
	}
}

// optionalOK implements decision-table rule 8: a non-optional from is
// always fine; an optional from requires an optional to.
func optionalOK(from, to typesys.Type) bool {
	return !from.Optional() || to.Optional()
}

func compatibleToClass(from, to typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	if from.Kind() != typesys.KindClass {
		return false
	}
	fromClass, toClass := from.Class(), to.Class()
	if !fromClass.IsSubclassOf(toClass) {
		return false
	}
	return identicalGenericArguments(from, to, tc, ctf)
}

// conformsToProtocol checks that from declares (directly or via its
// superclass chain) conformance to p's underlying protocol, and that p's
// own generic arguments (if any) match once resolved on from.
func conformsToProtocol(from typesys.Type, p typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	protoDef := p.Protocol()

	var conformed typesys.Type
	var ok bool
	switch from.Kind() {
	case typesys.KindClass:
		conformed, ok = from.Class().ConformedType(protoDef)
	case typesys.KindValueType:
		conformed, ok = from.EValueType().ConformedType(protoDef)
	case typesys.KindEnum:
		conformed, ok = from.Enum().ConformedType(protoDef)
	case typesys.KindProtocol:
		// A protocol is compatible with another protocol only by being
		// the same protocol (no protocol-to-protocol subtyping modeled).
		return from.Protocol() == protoDef
	default:
		return false
	}
	if !ok {
		return false
	}
	if len(p.GenericArguments()) == 0 {
		return true
	}
	return identicalGenericArguments(conformed, p, tc, ctf)
}

// compatibleToCallable implements rule 6: from must be callable with the
// same arity, each argument compatible contravariantly, and the return
// type compatible covariantly.
func compatibleToCallable(from, to typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	if from.Kind() != typesys.KindCallable {
		return false
	}
	fromParams, toParams := from.CallableParameters(), to.CallableParameters()
	if len(fromParams) != len(toParams) {
		return false
	}
	for i := range toParams {
		// Contravariant: to's declared parameter type must be acceptable
		// wherever from's parameter type is expected.
		if !CompatibleTo(toParams[i], fromParams[i], tc, ctf) {
			return false
		}
	}
	// Covariant: from's return type must be acceptable wherever to's
	// return type is expected.
	return CompatibleTo(from.CallableReturn(), to.CallableReturn(), tc, ctf)
}

// compatibleGenericVariableFallback implements rule 9's default path: two
// generic variables are compatible only by identity of (constraint,
// index), unless a CommonTypeFinder is unifying them, in which case both
// contribute their bounds and the comparison always succeeds.
func compatibleGenericVariableFallback(from, to typesys.Type, ctf *CommonTypeFinder) bool {
	if ctf != nil {
		ctf.Contribute(from)
		ctf.Contribute(to)
		return true
	}
	if from.Kind() != to.Kind() {
		return false
	}
	if from.GenericVariableIndex() != to.GenericVariableIndex() {
		return false
	}
	if from.Kind() == typesys.KindGenericVariable {
		return from.GenericConstraintDefinition() == to.GenericConstraintDefinition()
	}
	return from.GenericConstraintFunction() == to.GenericConstraintFunction()
}

// identicalGenericArguments compares two same-definition types' generic
// argument lists element-wise using IdenticalTo.
func identicalGenericArguments(from, to typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	fromArgs, toArgs := from.GenericArguments(), to.GenericArguments()
	if len(fromArgs) != len(toArgs) {
		return false
	}
	for i := range fromArgs {
		if !IdenticalTo(fromArgs[i], toArgs[i], tc, ctf) {
			return false
		}
	}
	return true
}

// IdenticalTo is the equivalence used for generic specialization keys. It
// matches typesys.Type.Equal except that generic variables go through
// rule 9's fallback, since two types that only differ in which generic
// variable they name may still need to be treated as identical within a
// CommonTypeFinder unification. tc is not consulted.
func IdenticalTo(from, to typesys.Type, tc typesys.TypeContext, ctf *CommonTypeFinder) bool {
	if from.Kind().IsGenericVariableKind() || to.Kind().IsGenericVariableKind() {
		return compatibleGenericVariableFallback(from, to, ctf)
	}
	if from.Kind() != to.Kind() || from.Optional() != to.Optional() || from.Meta() != to.Meta() {
		return false
	}
	if from.Kind().HasDefinition() && from.TypeDefinition() != to.TypeDefinition() {
		return false
	}
	fromArgs, toArgs := from.GenericArguments(), to.GenericArguments()
	if len(fromArgs) != len(toArgs) {
		return false
	}
	for i := range fromArgs {
		if !IdenticalTo(fromArgs[i], toArgs[i], tc, ctf) {
			return false
		}
	}
	return true
}
