package lower

import "github.com/darkmastermindz/emojicode/pkg/ir"

// Context is the function code generator context consumed by this
// package's lowering operations: the current function's `this` value
// (nil for a free function or a static context), the active Scope, the
// TypeHelper for mapping core types to backend types, and the backend
// Builder itself.
type Context interface {
	This() ir.Value
	Scope() *Scope
	TypeHelper() ir.TypeHelper
	Builder() ir.Builder
}
