package compat

import (
	"testing"

	"github.com/darkmastermindz/emojicode/pkg/typesys"
	"github.com/stretchr/testify/assert"
)

func TestSomethingAcceptsAnything(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	from := typesys.NewClassType(cls, true)
	to := typesys.Something(false)

	assert.True(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
}

func TestSubclassIsCompatibleWithSuperclass(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	animal := typesys.NewClass("🐾", pkg, 0, nil, typesys.VTIProviderSet{})
	dog := typesys.NewClass("🐕", pkg, 0, animal, typesys.VTIProviderSet{})

	from := typesys.NewClassType(dog, false)
	to := typesys.NewClassType(animal, false)

	assert.True(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
	assert.False(t, CompatibleTo(to, from, typesys.TypeContext{}, nil))
}

func TestOptionalFromRequiresOptionalTo(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	from := typesys.NewClassType(cls, true)
	to := typesys.NewClassType(cls, false)

	assert.False(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
	assert.True(t, CompatibleTo(to, from, typesys.TypeContext{}, nil)) // non-optional from can go to optional to
}

func TestClassConformsToProtocol(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	p := typesys.NewProtocol("🧩", pkg, 0, nil)
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	cls.Conforms = []typesys.Type{typesys.NewProtocolType(p, false)}

	from := typesys.NewClassType(cls, false)
	to := typesys.NewProtocolType(p, false)

	assert.True(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
}

func TestMultiProtocolRequiresEveryMember(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	p1 := typesys.NewProtocol("🅰️", pkg, 0, nil)
	p2 := typesys.NewProtocol("🅱️", pkg, 0, nil)
	cls := typesys.NewClass("🐈", pkg, 0, nil, typesys.VTIProviderSet{})
	cls.Conforms = []typesys.Type{typesys.NewProtocolType(p1, false)}

	from := typesys.NewClassType(cls, false)
	to := typesys.NewMultiProtocol([]typesys.Type{typesys.NewProtocolType(p1, false), typesys.NewProtocolType(p2, false)}, false)

	assert.False(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))

	cls.Conforms = append(cls.Conforms, typesys.NewProtocolType(p2, false))
	assert.True(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
}

func TestCallableVariance(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	animal := typesys.NewClass("🐾", pkg, 0, nil, typesys.VTIProviderSet{})
	dog := typesys.NewClass("🐕", pkg, 0, animal, typesys.VTIProviderSet{})

	animalTy := typesys.NewClassType(animal, false)
	dogTy := typesys.NewClassType(dog, false)

	// from: (🐾) -> 🐕   to: (🐕) -> 🐾
	from := typesys.CallableIncomplete(false).WithGenericArguments([]typesys.Type{dogTy, animalTy})
	to := typesys.CallableIncomplete(false).WithGenericArguments([]typesys.Type{animalTy, dogTy})

	assert.True(t, CompatibleTo(from, to, typesys.TypeContext{}, nil))
	assert.False(t, CompatibleTo(to, from, typesys.TypeContext{}, nil))
}

func TestGenericVariableIdentityFallback(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	box := typesys.NewClass("📦", pkg, 1, nil, typesys.VTIProviderSet{})
	a := typesys.NewGenericVariable(false, 0, box)
	b := typesys.NewGenericVariable(false, 0, box)
	c := typesys.NewGenericVariable(false, 1, box)

	assert.True(t, CompatibleTo(a, b, typesys.TypeContext{}, nil))
	assert.False(t, CompatibleTo(a, c, typesys.TypeContext{}, nil))
}

func TestGenericVariableUnifiesThroughCommonTypeFinder(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	box := typesys.NewClass("📦", pkg, 1, nil, typesys.VTIProviderSet{})
	a := typesys.NewGenericVariable(false, 0, box)
	c := typesys.NewGenericVariable(false, 1, box)

	var ctf CommonTypeFinder
	assert.True(t, CompatibleTo(a, c, typesys.TypeContext{}, &ctf))
	assert.Equal(t, typesys.Something(false), ctf.CommonType())
}

func TestIdenticalToRequiresExactMatch(t *testing.T) {
	pkg := typesys.NewPackage("🏠")
	vt := typesys.NewValueType("🔢", pkg, 1, 1, typesys.VTIProviderSet{})
	a := typesys.NewValueTypeType(vt, false).WithGenericArguments([]typesys.Type{typesys.Something(false)})
	b := typesys.NewValueTypeType(vt, false).WithGenericArguments([]typesys.Type{typesys.Something(false)})
	c := typesys.NewValueTypeType(vt, false).WithGenericArguments([]typesys.Type{typesys.Someobject(false)})

	assert.True(t, IdenticalTo(a, b, typesys.TypeContext{}, nil))
	assert.False(t, IdenticalTo(a, c, typesys.TypeContext{}, nil))
}
