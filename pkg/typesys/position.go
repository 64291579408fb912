package typesys

import "fmt"

// SourcePosition locates a token in the original emoji source text. It is
// the position value threaded through diagnostics, function declarations,
// and attribute bags.
type SourcePosition struct {
	File   string
	Line   int
	Column int
}

func (p SourcePosition) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// AccessLevel is a Function's declared visibility.
type AccessLevel int

const (
	// Private is visible only within the declaring type definition.
	Private AccessLevel = iota
	// PackageAccess is visible within the declaring package.
	PackageAccess
	// Public is visible to importers of the package.
	Public
)

func (a AccessLevel) String() string {
	switch a {
	case Private:
		return "private"
	case PackageAccess:
		return "package"
	case Public:
		return "public"
	default:
		return "unknown"
	}
}
