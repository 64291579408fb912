package storage

import (
	"testing"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForceBoxAlwaysWins(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	ty := typesys.NewClassType(cls, false).ForceBoxed()

	assert.Equal(t, Box, Classify(ty))
}

func TestClassIsScalar(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	ty := typesys.NewClassType(cls, false)

	assert.Equal(t, Scalar, Classify(ty))
	assert.Equal(t, 1, Size(ty))
}

func TestProtocolAlwaysBoxes(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	p := typesys.NewProtocol("🧩", pkg, 0, nil)
	ty := typesys.NewProtocolType(p, false)

	assert.Equal(t, Box, Classify(ty))
	assert.Equal(t, 4, Size(ty))
}

func TestOptionalValueTypeSmallIsSimpleOptional(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	vt := typesys.NewValueType("🔢", pkg, 0, 2, typesys.VTIProviderSet{})
	ty := typesys.NewValueTypeType(vt, true)

	assert.Equal(t, SimpleOptional, Classify(ty))
	assert.Equal(t, 3, Size(ty)) // 2 payload words + 1 presence flag
}

func TestOptionalValueTypeLargeIsBox(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	vt := typesys.NewValueType("📐", pkg, 0, 5, typesys.VTIProviderSet{})
	ty := typesys.NewValueTypeType(vt, true)

	assert.Equal(t, Box, Classify(ty))
}

func TestNonOptionalValueTypeIsScalar(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	vt := typesys.NewValueType("🔢", pkg, 0, 2, typesys.VTIProviderSet{})
	ty := typesys.NewValueTypeType(vt, false)

	assert.Equal(t, Scalar, Classify(ty))
}

func TestErrorBoxesUnlessBothSidesScalar(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	vt := typesys.NewValueType("🔢", pkg, 0, 1, typesys.VTIProviderSet{})
	scalarSide := typesys.NewValueTypeType(vt, false)
	p := typesys.NewProtocol("🧩", pkg, 0, nil)
	boxedSide := typesys.NewProtocolType(p, false)

	bothScalar := typesys.ErrorType().WithGenericArguments([]typesys.Type{scalarSide, scalarSide})
	assert.Equal(t, Scalar, Classify(bothScalar))

	oneBoxed := typesys.ErrorType().WithGenericArguments([]typesys.Type{scalarSide, boxedSide})
	assert.Equal(t, Box, Classify(oneBoxed))
}

func TestRemotelyStoredMatchesFormula(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	small := typesys.NewValueType("🔢", pkg, 0, 2, typesys.VTIProviderSet{})
	assert.False(t, RemotelyStored(typesys.NewValueTypeType(small, false)))

	// An optional 5-word value type classifies Box, whose Size is 4: 4 > 3
	// fails on the optional flag and 4 > 4 is false.
	large := typesys.NewValueType("📐", pkg, 0, 5, typesys.VTIProviderSet{})
	assert.False(t, RemotelyStored(typesys.NewValueTypeType(large, true)))
}

func TestUnboxRejectsInherentlyBoxedKinds(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	p := typesys.NewProtocol("🧩", pkg, 0, nil)
	ty := typesys.NewProtocolType(p, false).ForceBoxed()

	_, err := Unbox(ty)
	require.Error(t, err)
	var boxErr *BoxRequiredError
	require.ErrorAs(t, err, &boxErr)
}

func TestUnboxSucceedsWhenOnlyForceBoxHeld(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	ty := typesys.NewClassType(cls, false).ForceBoxed()

	unboxed, err := Unbox(ty)
	require.NoError(t, err)
	assert.False(t, unboxed.ForceBox())
	assert.Equal(t, Scalar, Classify(unboxed))
}

func TestBoxTagStringRoundTrips(t *testing.T) {
	for _, tag := range []BoxTag{TagNothingness, TagObjectReference, TagValueType, TagError, TagCallable, TagGeneric} {
		parsed, ok := ParseBoxTag(tag.String())
		require.True(t, ok)
		assert.Equal(t, tag, parsed)
	}
}
