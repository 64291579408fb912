package typesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassTypeAccessors(t *testing.T) {
	pkg := NewPackage("🏠")
	cls := NewClass("🐈", pkg, 0, nil, VTIProviderSet{})
	ty := NewClassType(cls, false)

	require.Equal(t, KindClass, ty.Kind())
	require.Equal(t, cls, ty.Class())
	assert.False(t, ty.Optional())
	assert.True(t, ty.Mutable())
}

func TestWrongProjectionPanicsKindMismatch(t *testing.T) {
	pkg := NewPackage("🏠")
	cls := NewClass("🐈", pkg, 0, nil, VTIProviderSet{})
	ty := NewClassType(cls, false)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		ierr, ok := r.(*InvariantError)
		require.True(t, ok)
		assert.Equal(t, KindMismatch, ierr.Kind)
	}()
	_ = ty.Protocol()
}

func TestMultiProtocolMembersAreSorted(t *testing.T) {
	pkg := NewPackage("🏠")
	pb := NewProtocol("🅱️", pkg, 0, nil)
	pa := NewProtocol("🅰️", pkg, 0, nil)
	pc := NewProtocol("🅲", pkg, 0, nil)

	unsorted := []Type{NewProtocolType(pb, false), NewProtocolType(pc, false), NewProtocolType(pa, false)}
	mp := NewMultiProtocol(unsorted, false)

	members := mp.Protocols()
	require.Len(t, members, 3)
	assert.Equal(t, pa, members[0].Protocol())
	assert.Equal(t, pb, members[1].Protocol())
	assert.Equal(t, pc, members[2].Protocol())

	// invariant: member list equals sort(members), regardless of
	// construction order.
	reordered := NewMultiProtocol([]Type{NewProtocolType(pc, false), NewProtocolType(pa, false), NewProtocolType(pb, false)}, false)
	assert.True(t, mp.Equal(reordered))
}

func TestForceBoxedTypeNeverMutatesReceiver(t *testing.T) {
	base := Something(false)
	boxed := base.ForceBoxed()

	assert.False(t, base.ForceBox())
	assert.True(t, boxed.ForceBox())
}

func TestWithOptionalReturnsCopy(t *testing.T) {
	base := Something(false)
	opt := base.WithOptional(true)

	assert.False(t, base.Optional())
	assert.True(t, opt.Optional())
}

func TestEqualRequiresRecursiveGenericArguments(t *testing.T) {
	pkg := NewPackage("🏠")
	cls := NewClass("📦", pkg, 1, nil, VTIProviderSet{})
	base := NewClassType(cls, false)

	intTy := Something(false)
	strTy := Someobject(false)

	a := base.WithGenericArguments([]Type{intTy})
	b := base.WithGenericArguments([]Type{intTy})
	c := base.WithGenericArguments([]Type{strTy})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMetaRequiresAllowedKind(t *testing.T) {
	callable := CallableIncomplete(false)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		ierr, ok := r.(*InvariantError)
		require.True(t, ok)
		assert.Equal(t, KindMismatch, ierr.Kind)
	}()
	_ = callable.WithMeta(true)
}

func TestGenericVariableIndexRoundTrips(t *testing.T) {
	pkg := NewPackage("🏠")
	cls := NewClass("📦", pkg, 2, nil, VTIProviderSet{})
	gv := NewGenericVariable(false, 1, cls)

	assert.Equal(t, 1, gv.GenericVariableIndex())
	assert.Equal(t, TypeDefinition(cls), gv.GenericConstraintDefinition())
}

func TestStringifyEmojiGlyphsStayIntact(t *testing.T) {
	pkg := NewPackage("🏠")
	cls := NewClass("🐈‍⬛", pkg, 0, nil, VTIProviderSet{})
	ty := NewClassType(cls, true)

	s := ty.String()
	assert.Contains(t, s, "🐈‍⬛")
	assert.Contains(t, s, glyphOptional)
}
