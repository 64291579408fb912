// Package attrs models the attribute surface consumed from the parser:
// a fixed set of emoji-glyph attribute markers (Deprecated, Final,
// Override, StaticOnType, Mutating, Required, Export) presented as a
// typed, position-indexed bag. The parser itself (lexing/attaching these
// markers to a declaration) is out of scope; this package only defines
// the bag shape the core reads, grounded on
// EmojicodeCompiler/Parsing/AttributesParser.hpp.
package attrs

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// Attribute is one of the fixed emoji-glyph declaration markers.
type Attribute int

const (
	// Deprecated: warn on use.
	Deprecated Attribute = iota
	// Final: disallow override.
	Final
	// Override: require presence of a super declaration.
	Override
	// StaticOnType: type method / type initializer.
	StaticOnType
	// Mutating: value-type method may mutate self.
	Mutating
	// Required: initializer required on subclasses.
	Required
	// Export: emit in linking table.
	Export
)

func (a Attribute) String() string {
	switch a {
	case Deprecated:
		return "Deprecated"
	case Final:
		return "Final"
	case Override:
		return "Override"
	case StaticOnType:
		return "StaticOnType"
	case Mutating:
		return "Mutating"
	case Required:
		return "Required"
	case Export:
		return "Export"
	default:
		return "Unknown"
	}
}

// Bag is the typed, position-indexed set of attributes attached to one
// declaration. The parser builds it; the core only reads it.
type Bag struct {
	positions map[Attribute]typesys.SourcePosition
}

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{positions: make(map[Attribute]typesys.SourcePosition)}
}

// Set records that a was present at pos.
func (b *Bag) Set(a Attribute, pos typesys.SourcePosition) {
	b.positions[a] = pos
}

// Has reports whether a is present in the bag.
func (b *Bag) Has(a Attribute) bool {
	_, ok := b.positions[a]
	return ok
}

// Position returns the source position at which a was attached, if present.
func (b *Bag) Position(a Attribute) (typesys.SourcePosition, bool) {
	pos, ok := b.positions[a]
	return pos, ok
}

// DeclKind names the kind of declaration a Bag is attached to, used by
// Validate to decide which attributes are applicable.
type DeclKind int

const (
	// DeclInstanceMethod is an ordinary instance method.
	DeclInstanceMethod DeclKind = iota
	// DeclTypeMethod is declared with StaticOnType.
	DeclTypeMethod
	// DeclInitializer is a class/value-type/enum initializer.
	DeclInitializer
	// DeclValueTypeMethod is an instance method declared on a ValueType.
	DeclValueTypeMethod
)

// allowed maps each DeclKind to the attributes meaningful on it.
var allowed = map[DeclKind]map[Attribute]bool{
	DeclInstanceMethod: {Deprecated: true, Final: true, Override: true, Export: true},
	DeclTypeMethod:      {Deprecated: true, Final: true, Override: true, StaticOnType: true, Export: true},
	DeclInitializer:     {Deprecated: true, Required: true, Override: true, Export: true},
	DeclValueTypeMethod: {Deprecated: true, Final: true, Override: true, Mutating: true, Export: true},
}

// Validate reports Attribute-Not-Applicable for every attribute in b that
// is not meaningful for kind, mirroring "the parser reports unallowed
// attributes at the source position" — the core performs the same check
// wherever a Bag reaches it without having passed through a real parser.
func (b *Bag) Validate(kind DeclKind) []InapplicableAttribute {
	var bad []InapplicableAttribute
	for a, pos := range b.positions {
		if !allowed[kind][a] {
			bad = append(bad, InapplicableAttribute{Attribute: a, Position: pos, DeclKind: kind})
		}
	}
	return bad
}

// InapplicableAttribute records one Attribute-Not-Applicable finding.
type InapplicableAttribute struct {
	Attribute Attribute
	Position  typesys.SourcePosition
	DeclKind  DeclKind
}
