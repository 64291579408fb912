// Package contract implements the function contract enforcer (C5): given a
// function and the direct super-declaration it overrides (or a protocol
// requirement it is being checked against), it verifies access level,
// return-type and argument compatibility, storage-class agreement, and
// arity, reporting each violation it finds through a diagnostics.Sink
// rather than failing the whole compilation. An Override-Sealed,
// Access-Mismatch, Return-Incompatible or Arity-Mismatch finding ends the
// check, so later violations of the same pair are not reported after one
// of those. Grounded on
// EmojicodeCompiler::Function::enforcePromises.
package contract

import (
	"fmt"

	"github.com/darkmastermindz/emojicode/pkg/compat"
	"github.com/darkmastermindz/emojicode/pkg/diagnostics"
	"github.com/darkmastermindz/emojicode/pkg/generics"
	"github.com/darkmastermindz/emojicode/pkg/storage"
	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

// Result is Enforce's structured outcome. OK is true on every path except
// one: a Return-Storage-Incompatible finding outside a protocol context,
// where the diagnostic is reported, the remaining checks still run, and OK
// is false so the caller can decide whether to generate code for this
// pairing. NeedsThunk signals that the code
// generator must synthesize a bridging function between the protocol's
// storage view and f's concrete view.
type Result struct {
	OK         bool
	NeedsThunk bool
}

// Enforce checks f's override contract against its direct super-declaration
// super, implementing the eight-step algorithm. protocolCtx is non-nil when
// f is being checked against a protocol requirement rather than an ordinary
// class/value-type override; in that mode, a storage-class mismatch
// produces NeedsThunk instead of an Argument/Return-Storage-Incompatible
// diagnostic.
func Enforce(f, super *typesys.Function, protocolCtx *typesys.TypeContext, sink diagnostics.Sink) Result {
	inProtocol := protocolCtx != nil

	// Step 1: Override-Sealed.
	if super.Final {
		diagnostics.ReportError(sink, diagnostics.OverrideSealed, f.Position,
			fmt.Sprintf("%q cannot override %q, which is final", f.Name, super.Name))
		return Result{OK: true}
	}

	// Step 2: Access-Mismatch.
	if f.Access != super.Access {
		diagnostics.ReportError(sink, diagnostics.AccessMismatch, f.Position,
			fmt.Sprintf("%q declares access %s, but %q declared %s", f.Name, f.Access, super.Name, super.Access))
		return Result{OK: true}
	}

	fCtx := declContext(f)
	superCtx := fCtx
	if inProtocol {
		superCtx = *protocolCtx
	}

	// Step 3: Return-Incompatible.
	sRet := generics.ResolveOn(super.ReturnType, superCtx)
	fRet := generics.ResolveOn(f.ReturnType, fCtx)
	if !compat.CompatibleTo(fRet, sRet, fCtx, nil) {
		diagnostics.ReportError(sink, diagnostics.ReturnIncompatible, f.Position,
			fmt.Sprintf("%q's return type is not compatible with %q's", f.Name, super.Name))
		return Result{OK: true}
	}

	// Step 4: a Box-storage super return forces the override's return type
	// to the same calling convention, outside a protocol context.
	if !inProtocol && storage.Classify(sRet) == storage.Box {
		f.ReturnType = f.ReturnType.ForceBoxed()
		fRet = fRet.ForceBoxed()
	}

	result := Result{OK: true}

	// Step 5: Return-Storage-Incompatible / needs-thunk.
	if storage.Classify(sRet) != storage.Classify(fRet) {
		if inProtocol {
			result.NeedsThunk = true
		} else {
			diagnostics.ReportError(sink, diagnostics.ReturnStorageIncompatible, f.Position,
				fmt.Sprintf("%q's return storage class does not match %q's", f.Name, super.Name))
			result.OK = false
		}
	}

	// Step 6: Arity-Mismatch.
	if len(f.Arguments) != len(super.Arguments) {
		diagnostics.ReportError(sink, diagnostics.ArityMismatch, f.Position,
			fmt.Sprintf("%q declares %d argument(s), but %q declared %d", f.Name, len(f.Arguments), super.Name, len(super.Arguments)))
		return result
	}

	// Step 7: per-argument contravariant compatibility and storage agreement.
	for i := range f.Arguments {
		sArg := generics.ResolveOn(super.Arguments[i].Type, superCtx)
		fArg := generics.ResolveOn(f.Arguments[i].Type, fCtx)

		if !compat.CompatibleTo(sArg, fArg, fCtx, nil) {
			diagnostics.ReportError(sink, diagnostics.ArgumentIncompatible, f.Position,
				fmt.Sprintf("%q's argument %d is not compatible with %q's", f.Name, i, super.Name))
			continue
		}

		if storage.Classify(sArg) != storage.Classify(fArg) {
			if inProtocol {
				result.NeedsThunk = true
			} else {
				diagnostics.ReportError(sink, diagnostics.ArgumentStorageIncompatible, f.Position,
					fmt.Sprintf("%q's argument %d storage class does not match %q's", f.Name, i, super.Name))
			}
		}
	}

	// Step 8: ok (possibly carrying the thunk signal accumulated above).
	return result
}

// declContext builds the TypeContext a function's own signature is resolved
// within: its declaring definition as the callee type, specialized with
// identity generic variables for each of its own generic slots. This is the
// "f.typeContext" referenced by the contract algorithm when no protocol
// context applies — free functions (f.Def == nil) get the zero TypeContext.
func declContext(f *typesys.Function) typesys.TypeContext {
	if f.Def == nil {
		return typesys.TypeContext{}
	}
	n := f.Def.GenericParameterCount()
	args := make([]typesys.Type, n)
	for i := 0; i < n; i++ {
		args[i] = typesys.NewGenericVariable(false, i, f.Def)
	}
	return typesys.TypeContext{CalleeType: identityType(f.Def, args), CalleeTypeArguments: args}
}

// identityType builds the Type wrapping def, specialized with args (its own
// identity generic variables), used only to populate a TypeContext's
// CalleeType.
func identityType(def typesys.TypeDefinition, args []typesys.Type) typesys.Type {
	var t typesys.Type
	switch d := def.(type) {
	case *typesys.Class:
		t = typesys.NewClassType(d, false)
	case *typesys.ValueType:
		t = typesys.NewValueTypeType(d, false)
	case *typesys.Enum:
		t = typesys.NewEnumType(d, false)
	case *typesys.Protocol:
		t = typesys.NewProtocolType(d, false)
	default:
		return typesys.Type{}
	}
	if len(args) > 0 && t.CanHaveGenericArguments() {
		t = t.WithGenericArguments(args)
	}
	return t
}
