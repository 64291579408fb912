package lower

import (
	"github.com/darkmastermindz/emojicode/pkg/ir"
	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

// InstanceVariablePointer computes a pointer to the fieldIndex-th instance
// field by generating a two-index gep (struct base + field index) against
// `this`, matching ASTGetVariable::instanceVariablePointer exactly: the
// first index is always the constant 0 selecting the pointed-to struct
// itself, not an array offset.
func InstanceVariablePointer(c Context, fieldIndex int) ir.Value {
	return c.Builder().GEP(c.This(), 0, fieldIndex)
}

// ReadInstanceVariable implements the instance-scoped Read contract: if
// the node is marked reference, it yields the field pointer directly,
// otherwise it loads through it.
func ReadInstanceVariable(c Context, fieldIndex int, reference bool) ir.Value {
	ptr := InstanceVariablePointer(c, fieldIndex)
	if reference {
		return ptr
	}
	return c.Builder().Load(ptr)
}

// ReadLocalVariable implements the local-scoped Read contract: a frozen
// (immutable) binding yields its stored value directly, with no load —
// no slot exists for it to load through. A mutable binding yields its
// slot pointer when reference, otherwise a load through it.
func ReadLocalVariable(c Context, varID int, reference bool) ir.Value {
	lv, ok := c.Scope().Lookup(varID)
	if !ok {
		panic("lower: read of undeclared local variable")
	}
	if !lv.Mutable {
		return lv.Value
	}
	if reference {
		return lv.Value
	}
	return c.Builder().Load(lv.Value)
}

// DeclareAndRead implements the declare-and-read (init path) contract:
// allocate a stack slot sized for t, install it as a mutable binding, then
// perform the ordinary local read.
func DeclareAndRead(c Context, varID int, t typesys.Type, reference bool) ir.Value {
	slot := c.Builder().Alloca(c.TypeHelper().LLVMTypeFor(t), "")
	c.Scope().Bind(varID, LocalVariable{Mutable: true, Value: slot})
	return ReadLocalVariable(c, varID, reference)
}

// DeclareWithoutInitializer implements the declaration-without-initializer
// contract: allocate a stack slot; if t is optional, store the "no value"
// sentinel into the presence slot (gep index [0, 0] of the freshly
// allocated slot), matching ASTVariableDeclaration::generate exactly.
func DeclareWithoutInitializer(c Context, varID int, t typesys.Type, name string) {
	slot := c.Builder().Alloca(c.TypeHelper().LLVMTypeFor(t), name)
	c.Scope().Bind(varID, LocalVariable{Mutable: true, Value: slot})
	if t.Optional() {
		presence := c.Builder().GEP(slot, 0, 0)
		c.Builder().Store(c.TypeHelper().NoValueSentinel(), presence)
	}
}

// AssignDeclaring implements the assignment contract's declaring case: a
// fresh stack slot is allocated, installed as a mutable binding, and the
// already-evaluated right-hand side value is stored into it.
func AssignDeclaring(c Context, varID int, t typesys.Type, name string, value ir.Value) {
	slot := c.Builder().Alloca(c.TypeHelper().LLVMTypeFor(t), name)
	c.Scope().Bind(varID, LocalVariable{Mutable: true, Value: slot})
	c.Builder().Store(value, slot)
}

// AssignInstance implements the assignment contract's instance-scoped
// case: the destination is an instance-field gep against `this`.
func AssignInstance(c Context, fieldIndex int, value ir.Value) {
	c.Builder().Store(value, InstanceVariablePointer(c, fieldIndex))
}

// AssignExisting implements the assignment contract's plain case: the
// destination is the slot already bound in scope.
func AssignExisting(c Context, varID int, value ir.Value) {
	lv, ok := c.Scope().Lookup(varID)
	if !ok {
		panic("lower: assignment to undeclared local variable")
	}
	c.Builder().Store(value, lv.Value)
}

// AssignFrozen implements a `let` binding: the evaluated value is bound
// directly with no slot allocated at all, so subsequent writes are
// statically impossible (there is no pointer to write through).
func AssignFrozen(c Context, varID int, value ir.Value) {
	c.Scope().Bind(varID, LocalVariable{Mutable: false, Value: value})
}

// InitableCreator implements the initable-creator contract: if the
// wrapped expression is flagged no-action, it is evaluated only for its
// side effects (evalSideEffects); otherwise the assignment is performed
// (performAssignment). Both callbacks are supplied by the (out of scope)
// expression code generator that owns the actual expression AST node.
func InitableCreator(noAction bool, evalSideEffects func(), performAssignment func()) {
	if noAction {
		evalSideEffects()
	} else {
		performAssignment()
	}
}
