package contract

import (
	"testing"

	"github.com/darkmastermindz/emojicode/pkg/diagnostics"
	"github.com/darkmastermindz/emojicode/pkg/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFn(name string, access typesys.AccessLevel, ret typesys.Type, args ...typesys.Argument) *typesys.Function {
	return typesys.NewFunction(name, typesys.SourcePosition{Line: 1}, access, args, ret)
}

func TestEnforceOverrideSealed(t *testing.T) {
	pkg := typesys.NewPackage("test")
	cls := typesys.NewClass("Animal", pkg, 0, nil, typesys.VTIProviderSet{})

	super := newFn("speak", typesys.Public, typesys.Something(false))
	super.Final = true
	super.Def = cls
	f := newFn("speak", typesys.Public, typesys.Something(false))
	f.Def = cls

	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.OverrideSealed, sink.Errors()[0].Kind)
}

func TestEnforceAccessMismatch(t *testing.T) {
	super := newFn("speak", typesys.Public, typesys.Something(false))
	f := newFn("speak", typesys.Private, typesys.Something(false))

	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.AccessMismatch, sink.Errors()[0].Kind)
}

func TestEnforceArityMismatch(t *testing.T) {
	super := newFn("speak", typesys.Public, typesys.Something(false),
		typesys.Argument{Name: "a", Type: typesys.Something(false)})
	f := newFn("speak", typesys.Public, typesys.Something(false))

	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ArityMismatch, sink.Errors()[0].Kind)
}

// TestEnforceOverrideForcesCovariantReturnToBox exercises step 4/5: when the
// super-declaration's return type classifies as Box, a structurally
// compatible but differently-classified override return type gets
// force-boxed so the override still returns through the same calling
// convention, rather than being flagged Return-Storage-Incompatible.
func TestEnforceOverrideForcesCovariantReturnToBox(t *testing.T) {
	pkg := typesys.NewPackage("test")
	protoDef := typesys.NewProtocol("Named", pkg, 0, nil)

	// super returns Something, which always classifies Box.
	super := newFn("label", typesys.Public, typesys.Something(false))

	valueType := typesys.NewValueType("Tag", pkg, 0, 1, typesys.VTIProviderSet{})
	protoType := typesys.NewProtocolType(protoDef, false)
	valueType.Conforms = []typesys.Type{protoType}
	// f returns the value type itself, which is normally Scalar.
	fRet := typesys.NewValueTypeType(valueType, false)
	f := newFn("label", typesys.Public, fRet)

	// CompatibleTo(fRet, Something) is always true (Something accepts anything),
	// so step 3 passes and step 4 should force-box f's return type.
	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	assert.False(t, res.NeedsThunk)
	assert.True(t, f.ReturnType.ForceBox(), "override return type should have been force-boxed")
	assert.Empty(t, sink.Errors())
}

// TestEnforceProtocolStorageMismatchNeedsThunk exercises step 5/7 in a
// protocol context: an argument that is structurally compatible but
// force-boxed (so its storage class differs from the protocol
// requirement's) produces NeedsThunk instead of an Argument-Storage-
// Incompatible diagnostic.
func TestEnforceProtocolStorageMismatchNeedsThunk(t *testing.T) {
	pkg := typesys.NewPackage("test")
	tag := typesys.NewEnum("Tag", pkg, 0, typesys.VTIProviderSet{})

	plain := typesys.NewEnumType(tag, false)   // Scalar
	boxed := plain.ForceBoxed()                // Box

	req := newFn("accept", typesys.Public, typesys.Something(false),
		typesys.Argument{Name: "x", Type: plain})
	impl := newFn("accept", typesys.Public, typesys.Something(false),
		typesys.Argument{Name: "x", Type: boxed})

	sink := diagnostics.NewCollectingSink()
	ctx := typesys.TypeContext{}
	res := Enforce(impl, req, &ctx, sink)

	assert.True(t, res.OK)
	assert.True(t, res.NeedsThunk)
	assert.Empty(t, sink.Errors())
}

// TestEnforceArgumentStorageIncompatibleOutsideProtocol is the same
// disagreement as above, but checked as an ordinary override (no protocol
// context): it must be reported as Argument-Storage-Incompatible rather
// than silently producing a thunk signal.
func TestEnforceArgumentStorageIncompatibleOutsideProtocol(t *testing.T) {
	pkg := typesys.NewPackage("test")
	tag := typesys.NewEnum("Tag", pkg, 0, typesys.VTIProviderSet{})

	plain := typesys.NewEnumType(tag, false)
	boxed := plain.ForceBoxed()

	super := newFn("accept", typesys.Public, typesys.Something(false),
		typesys.Argument{Name: "x", Type: plain})
	f := newFn("accept", typesys.Public, typesys.Something(false),
		typesys.Argument{Name: "x", Type: boxed})

	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	assert.False(t, res.NeedsThunk)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ArgumentStorageIncompatible, sink.Errors()[0].Kind)
}

func TestEnforceReturnIncompatibleOutsideProtocol(t *testing.T) {
	pkg := typesys.NewPackage("test")
	cls := typesys.NewClass("Animal", pkg, 0, nil, typesys.VTIProviderSet{})
	otherCls := typesys.NewClass("Unrelated", pkg, 0, nil, typesys.VTIProviderSet{})

	super := newFn("make", typesys.Public, typesys.NewClassType(cls, false))
	f := newFn("make", typesys.Public, typesys.NewClassType(otherCls, false))

	sink := diagnostics.NewCollectingSink()
	res := Enforce(f, super, nil, sink)

	assert.True(t, res.OK)
	require.Len(t, sink.Errors(), 1)
	assert.Equal(t, diagnostics.ReturnIncompatible, sink.Errors()[0].Kind)
}
