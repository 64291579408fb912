package compat

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// CommonTypeFinder accumulates the bounds contributed by both sides of a
// generic-variable unification (rule 9 of compatibleTo's decision table)
// and resolves them to the single most specific common type once every
// branch has contributed — used, for instance, when inferring the element
// type of an array literal whose elements look heterogeneous until their
// generic variables are unified.
type CommonTypeFinder struct {
	candidates []typesys.Type
	something  bool
}

// Contribute records t as one of the branches unified so far.
func (f *CommonTypeFinder) Contribute(t typesys.Type) {
	if t.Kind() == typesys.KindSomething {
		f.something = true
		return
	}
	f.candidates = append(f.candidates, t)
}

// CommonType returns the narrowest type compatible with every contributed
// branch: identical candidates collapse to themselves, a single candidate
// is used as-is, and anything else (or no contributions) falls back to
// Something, the universal top type.
func (f *CommonTypeFinder) CommonType() typesys.Type {
	if f.something || len(f.candidates) == 0 {
		return typesys.Something(false)
	}
	first := f.candidates[0]
	for _, c := range f.candidates[1:] {
		if !c.Equal(first) {
			return typesys.Something(false)
		}
	}
	return first
}
