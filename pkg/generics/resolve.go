// Package generics implements the generic resolver (C3): it resolves a
// typesys.Type against a typesys.TypeContext, substituting
// GenericVariable/LocalGenericVariable occurrences with concrete (or, in
// the super-and-constraints mode, maximally-informative bound) types.
// Grounded on EmojicodeCompiler::Type::resolveOn and
// ::resolveOnSuperArgumentsAndConstraints.
package generics

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// ResolveOn resolves t against tc, recursively substituting every
// GenericVariable and LocalGenericVariable occurrence that tc can resolve.
// Applying ResolveOn twice yields the same Type as applying it once
// (idempotence).
func ResolveOn(t typesys.Type, tc typesys.TypeContext) typesys.Type {
	return resolve(t, tc, concreteMode)
}

// ResolveOnSuperArgumentsAndConstraints resolves t the same way, except
// generic variables substitute with their slot's declared upper-bound
// constraint instead of tc's concrete argument. Used while compiling a
// generic definition's own body, where no concrete argument exists yet
// but the bound is still safe for every future instantiation.
func ResolveOnSuperArgumentsAndConstraints(t typesys.Type, tc typesys.TypeContext) typesys.Type {
	return resolve(t, tc, constraintMode)
}

type resolveMode int

const (
	concreteMode resolveMode = iota
	constraintMode
)

func resolve(t typesys.Type, tc typesys.TypeContext, mode resolveMode) typesys.Type {
	switch t.Kind() {
	case typesys.KindGenericVariable:
		constraint := t.GenericConstraintDefinition()
		switch mode {
		case constraintMode:
			bound := constraint.GenericParameterBound(t.GenericVariableIndex())
			return withOptionalPropagated(resolve(bound, tc, mode), t)
		default:
			if tc.CanResolve(constraint) {
				idx := t.GenericVariableIndex()
				if idx < len(tc.CalleeTypeArguments) {
					substituted := tc.CalleeTypeArguments[idx]
					return withOptionalPropagated(resolve(substituted, tc, mode), t)
				}
			}
			return t
		}
	case typesys.KindLocalGenericVariable:
		fn := t.GenericConstraintFunction()
		switch mode {
		case constraintMode:
			// Local generics have no declared bound table in this model;
			// Something is always a safe upper bound.
			return withOptionalPropagated(typesys.Something(false), t)
		default:
			if tc.Function != nil && tc.Function == fn {
				idx := t.GenericVariableIndex()
				if idx < len(tc.FunctionGenericArguments) {
					substituted := tc.FunctionGenericArguments[idx]
					return withOptionalPropagated(resolve(substituted, tc, mode), t)
				}
			}
			return t
		}
	default:
		args := t.GenericArguments()
		if len(args) == 0 {
			return t
		}
		resolvedArgs := make([]typesys.Type, len(args))
		changed := false
		for i, a := range args {
			resolvedArgs[i] = resolve(a, tc, mode)
			if !resolvedArgs[i].Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return t.WithGenericArguments(resolvedArgs)
	}
}

// withOptionalPropagated ORs in the generic variable's own optional flag
// onto whatever it resolved to — a `🍬🔡0` substituted with a non-optional
// concrete type must still read as optional at the use site.
func withOptionalPropagated(resolved typesys.Type, original typesys.Type) typesys.Type {
	if original.Optional() && !resolved.Optional() {
		return resolved.WithOptional(true)
	}
	return resolved
}
