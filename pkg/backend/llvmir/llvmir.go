// Package llvmir is the one concrete pkg/ir.Builder/TypeHelper
// implementation wired into this repo, adapting a single
// github.com/llir/llvm basic block to the backend-agnostic contract
// pkg/lower depends on. Grounded on the LLVM codegen adapter pattern in
// the dshills/alas internal/codegen package (module/function/block
// bookkeeping, GEP-via-element-type lookups, alloca/load/store shape).
package llvmir

import (
	lir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	coreir "github.com/darkmastermindz/emojicode/pkg/ir"
	"github.com/darkmastermindz/emojicode/pkg/storage"
	"github.com/darkmastermindz/emojicode/pkg/typesys"
)

// boxValueType is the runtime representation of a Box: an i32 tag
// distinguishing Nothingness/object reference/value type/... followed by
// three i64 words of inline payload (or a pointer when
// storage.RemotelyStored), four fields in all, matching
// storage.kBoxValueSize.
var boxValueType = types.NewStruct(types.I32, types.I64, types.I64, types.I64)

// Builder adapts one function's current basic block to the ir.Builder
// contract. Callers create named blocks up front with NewNamedBlock, then
// switch the active block with SetCurrent before emitting Br/CondBr
// targets — branch targets are resolved by name, the way the higher-level
// AST nodes reference blocks before every block in a function is known.
type Builder struct {
	Func   *lir.Func
	Block  *lir.Block
	blocks map[string]*lir.Block
}

// NewBuilder creates a Builder over fn with a single "entry" block active.
func NewBuilder(fn *lir.Func) *Builder {
	entry := fn.NewBlock("entry")
	return &Builder{Func: fn, Block: entry, blocks: map[string]*lir.Block{"entry": entry}}
}

// NewNamedBlock creates and registers a new block under name without
// switching to it.
func (b *Builder) NewNamedBlock(name string) {
	b.blocks[name] = b.Func.NewBlock(name)
}

// SetCurrent switches the block subsequent operations emit into.
func (b *Builder) SetCurrent(name string) {
	b.Block = b.blocks[name]
}

// Alloca reserves a stack slot of the given type in the current block.
func (b *Builder) Alloca(t coreir.Type, name string) coreir.Value {
	a := b.Block.NewAlloca(t.(types.Type))
	if name != "" {
		a.SetName(name)
	}
	return a
}

// GEP computes a pointer to a sub-element of base by following idx, a
// sequence of constant i32 indices.
func (b *Builder) GEP(base coreir.Value, idx ...int) coreir.Value {
	baseVal := base.(value.Value)
	indices := make([]value.Value, len(idx))
	for i, n := range idx {
		indices[i] = constant.NewInt(types.I32, int64(n))
	}
	return b.Block.NewGetElementPtr(elementTypeOf(baseVal), baseVal, indices...)
}

// Load reads the value stored at ptr.
func (b *Builder) Load(ptr coreir.Value) coreir.Value {
	p := ptr.(value.Value)
	return b.Block.NewLoad(elementTypeOf(p), p)
}

// Store writes val into ptr.
func (b *Builder) Store(val coreir.Value, ptr coreir.Value) {
	b.Block.NewStore(val.(value.Value), ptr.(value.Value))
}

// Br emits an unconditional branch to the block registered under target.
func (b *Builder) Br(target string) {
	b.Block.NewBr(b.blocks[target])
}

// CondBr emits a conditional branch on cond.
func (b *Builder) CondBr(cond coreir.Value, thenTarget, elseTarget string) {
	b.Block.NewCondBr(cond.(value.Value), b.blocks[thenTarget], b.blocks[elseTarget])
}

// Call invokes callee with args.
func (b *Builder) Call(callee coreir.Value, args ...coreir.Value) coreir.Value {
	vargs := make([]value.Value, len(args))
	for i, a := range args {
		vargs[i] = a.(value.Value)
	}
	return b.Block.NewCall(callee.(value.Value), vargs...)
}

// elementTypeOf returns the pointee type of a pointer Value, or the
// value's own type if it is not a pointer (GEP's base is always expected
// to be a pointer in practice; this fallback only avoids a panic on a
// malformed caller).
func elementTypeOf(v value.Value) types.Type {
	if ptr, ok := v.Type().(*types.PointerType); ok {
		return ptr.ElemType
	}
	return v.Type()
}

var _ coreir.Builder = (*Builder)(nil)

// TypeHelper maps a core typesys.Type to its llir/llvm representation,
// driven entirely by the storage classifier: Box-classified types always
// get the uniform boxValueType envelope, SimpleOptional types get a
// presence flag alongside the payload, and Scalar types map directly to a
// native LLVM type.
type TypeHelper struct {
	noValue value.Value
}

// NewTypeHelper creates a TypeHelper whose NoValueSentinel is noValue (the
// application-level "no value" constant, supplied by the driver).
func NewTypeHelper(noValue value.Value) *TypeHelper {
	return &TypeHelper{noValue: noValue}
}

// LLVMTypeFor maps t to its backend type via the storage classifier.
func (h *TypeHelper) LLVMTypeFor(t typesys.Type) coreir.Type {
	switch storage.Classify(t) {
	case storage.Box:
		return boxValueType
	case storage.SimpleOptional:
		return types.NewStruct(types.I1, scalarTypeFor(t))
	default:
		return scalarTypeFor(t)
	}
}

// NoValueSentinel returns the application-level "no value" constant.
func (h *TypeHelper) NoValueSentinel() coreir.Value {
	return h.noValue
}

// scalarTypeFor maps a Scalar- or SimpleOptional-payload Type's Kind to a
// native LLVM type. Class/Someobject instances are reference-scalar
// (object pointer); Enum/ValueType instances are represented as a single
// machine word discriminant/payload; everything else defaults to i64.
func scalarTypeFor(t typesys.Type) types.Type {
	switch t.Kind() {
	case typesys.KindClass, typesys.KindSomeobject:
		return types.NewPointer(types.I8)
	default:
		return types.I64
	}
}

var _ coreir.TypeHelper = (*TypeHelper)(nil)
