// Package ir defines the IR builder contract consumed from the backend:
// the minimal set of operations pkg/lower needs to emit a function body,
// and the TypeHelper that maps a core typesys.Type to the backend's own
// type representation. pkg/lower depends only on these interfaces, never
// on a concrete backend — pkg/backend/llvmir provides the one concrete
// implementation wired into cmd/emojicorec.
package ir

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// Value is an opaque backend-level SSA value or pointer, returned by
// Builder operations and passed back into later ones. Its concrete
// representation is entirely up to the backend.
type Value interface{}

// Type is an opaque backend-level type, produced by TypeHelper and
// consumed by Builder.Alloca.
type Type interface{}

// Builder is the minimal set of instruction-emission operations the
// lowering component (C7) needs against a single function body's entry
// and current blocks.
type Builder interface {
	// Alloca reserves a stack slot of the given type, optionally named
	// (name may be empty), and returns a pointer Value to it.
	Alloca(t Type, name string) Value
	// GEP computes a pointer to a sub-element of base by following idx, a
	// sequence of constant indices (mirrors LLVM getelementptr).
	GEP(base Value, idx ...int) Value
	// Load reads the value stored at ptr.
	Load(ptr Value) Value
	// Store writes value into ptr.
	Store(value Value, ptr Value)
	// Br emits an unconditional branch to the block named target.
	Br(target string)
	// CondBr emits a conditional branch on cond to thenTarget or elseTarget.
	CondBr(cond Value, thenTarget, elseTarget string)
	// Call invokes callee with args and returns its result Value (or nil
	// for a void call).
	Call(callee Value, args ...Value) Value
}

// TypeHelper maps a core Type to the backend's own type representation,
// so pkg/lower never needs to know how the backend encodes boxes,
// optionals, or class layouts.
type TypeHelper interface {
	// LLVMTypeFor returns the backend type corresponding to t (named for
	// the one concrete backend this repo wires in; any IR-level builder
	// satisfies the same contract).
	LLVMTypeFor(t typesys.Type) Type
	// NoValueSentinel returns the application-level constant Value stored
	// into an optional's presence slot to mean "no value".
	NoValueSentinel() Value
}
