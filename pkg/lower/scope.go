// Package lower implements variable scope & lowering (C7): it translates a
// source-level variable read, declaration, or assignment into the small
// set of IR builder operations (alloca/gep/load/store) described by
// pkg/ir, deciding along the way whether a slot is needed at all (frozen
// bindings never get one) and whether a pointer or a loaded value is the
// right result (the reference flag). Grounded on
// EmojicodeCompiler::ASTVariables_CG.cpp and the teacher's
// pkg/compiler/vars.go stack-of-maps scope shape.
package lower

import "github.com/darkmastermindz/emojicode/pkg/ir"

// LocalVariable is one binding inside a Scope: either a mutable stack slot
// (Value is a pointer, Mutable is true) or a frozen binding that holds the
// already-evaluated value directly (Value is the value itself, Mutable is
// false, and no slot was ever allocated).
type LocalVariable struct {
	Mutable bool
	Value   ir.Value
}

// Scope is a stack of variable-id-to-binding maps, one map per lexical
// block, mirroring the teacher's []map[string]varInfo shape but keyed by
// the parser-assigned small integer variable id rather than a name (names
// are not needed once declarations are resolved to ids).
type Scope struct {
	frames []map[int]LocalVariable
}

// NewScope creates a Scope with one (function-level) frame already pushed.
func NewScope() *Scope {
	s := &Scope{}
	s.Push()
	return s
}

// Push opens a new lexical block.
func (s *Scope) Push() {
	s.frames = append(s.frames, make(map[int]LocalVariable))
}

// Pop closes the innermost lexical block. It is a programmer error to Pop
// the last remaining frame; callers are expected to balance every Push.
func (s *Scope) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Bind installs v under varID in the innermost frame.
func (s *Scope) Bind(varID int, v LocalVariable) {
	s.frames[len(s.frames)-1][varID] = v
}

// Lookup searches frames innermost-first for varID.
func (s *Scope) Lookup(varID int) (LocalVariable, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][varID]; ok {
			return v, true
		}
	}
	return LocalVariable{}, false
}
