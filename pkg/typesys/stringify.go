package typesys

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// these placeholder glyphs stand in for the real emoji-token table owned
// by the parser (out of scope here); they let String() produce stable,
// human-readable output without depending on the attribute/token
// recognizer.
const (
	glyphOptional   = "🍬"
	glyphMeta       = "🐇"
	glyphSomething  = "⚪️"
	glyphSomeobject = "🔵"
	glyphNoReturn   = "🚫"
	glyphError      = "🚨"
	glyphGeneric    = "🔡"
)

// String renders t using the package-prefixed emoji-glyph convention. It
// uses an empty TypeContext, so generic variables print their numeric slot
// index; StringIn prints them as their substitution within a context.
func (t Type) String() string {
	return t.toString(TypeContext{}, true)
}

// StringIn is String with an explicit TypeContext, used to resolve
// generic-variable slot names during diagnostics.
func (t Type) StringIn(tc TypeContext) string {
	return t.toString(tc, true)
}

func (t Type) toString(tc TypeContext, withPackage bool) string {
	var b strings.Builder
	if t.meta {
		b.WriteString(glyphMeta)
	}
	switch t.kind {
	case KindClass, KindProtocol, KindEnum, KindValueType, KindExtension:
		if withPackage {
			if pkg := t.definition.Pkg(); pkg != nil && pkg.Name() != "" {
				writeGraphemes(&b, pkg.Name())
				b.WriteString(".")
			}
		}
		writeGraphemes(&b, t.definition.Name())
		if len(t.genericArguments) > 0 {
			b.WriteString("🐚")
			for _, arg := range t.genericArguments {
				b.WriteString(arg.toString(tc, withPackage))
			}
			b.WriteString("🐚")
		}
	case KindMultiProtocol:
		b.WriteString("🍱")
		for i, p := range t.genericArguments {
			if i > 0 {
				b.WriteString("🤝")
			}
			b.WriteString(p.toString(tc, withPackage))
		}
		b.WriteString("🍱")
	case KindCallable:
		b.WriteString("🍇")
		for _, param := range t.CallableParameters() {
			b.WriteString(param.toString(tc, withPackage))
		}
		b.WriteString("🍉")
		if len(t.genericArguments) > 0 {
			ret := t.CallableReturn()
			if ret.kind != KindNoReturn {
				b.WriteString("➡️")
				b.WriteString(ret.toString(tc, withPackage))
			}
		}
	case KindGenericVariable:
		b.WriteString(glyphGeneric)
		if tc.HasCalleeType() && tc.canBeUsedToResolve(t.genericConstraintDef) && t.genericArgumentIndex < len(tc.CalleeTypeArguments) {
			b.WriteString(tc.CalleeTypeArguments[t.genericArgumentIndex].toString(tc, withPackage))
		} else {
			b.WriteString(strconv.Itoa(t.genericArgumentIndex))
		}
	case KindLocalGenericVariable:
		b.WriteString(glyphGeneric)
		if tc.Function != nil && tc.Function == t.genericConstraintFn && t.genericArgumentIndex < len(tc.FunctionGenericArguments) {
			b.WriteString(tc.FunctionGenericArguments[t.genericArgumentIndex].toString(tc, withPackage))
		} else {
			b.WriteString(strconv.Itoa(t.genericArgumentIndex))
		}
	case KindSomething:
		b.WriteString(glyphSomething)
	case KindSomeobject:
		b.WriteString(glyphSomeobject)
	case KindNoReturn:
		b.WriteString(glyphNoReturn)
	case KindError:
		b.WriteString(glyphError)
	case KindStorageExpectation:
		b.WriteString("❔")
	}
	if t.optional {
		b.WriteString(glyphOptional)
	}
	return b.String()
}

// writeGraphemes copies s into b one extended grapheme cluster at a time.
// Glyph names are frequently multi-codepoint emoji sequences (e.g. skin
// tone modifiers, ZWJ sequences); iterating by grapheme cluster instead of
// by rune keeps a name intact instead of splitting a combined glyph mid
// sequence, which matters the moment a future pass truncates or diffs
// these strings for diagnostics.
func writeGraphemes(b *strings.Builder, s string) {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		b.WriteString(gr.Str())
	}
}
