// Package diagnostics implements the diagnostics sink contract consumed
// from the (out of scope) diagnostics sink described in the external
// interfaces: callers report errors and warnings with a source position
// and a message; the core never decides how they are displayed.
package diagnostics

import "github.com/darkmastermindz/emojicode/pkg/typesys"

// Severity distinguishes a reported compile-time error from a warning.
type Severity int

const (
	// SeverityError is a compile-time error (report and continue, per
	// the error handling design).
	SeverityError Severity = iota
	// SeverityWarning is a non-fatal warning (e.g. Deprecated-Use).
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Kind names one of the closed set of compile-time error and warning kinds
// the contract enforcer and related components can report.
type Kind string

const (
	OverrideSealed              Kind = "Override-Sealed"
	AccessMismatch              Kind = "Access-Mismatch"
	ReturnIncompatible          Kind = "Return-Incompatible"
	ReturnStorageIncompatible   Kind = "Return-Storage-Incompatible"
	ArityMismatch               Kind = "Arity-Mismatch"
	ArgumentIncompatible        Kind = "Argument-Incompatible"
	ArgumentStorageIncompatible Kind = "Argument-Storage-Incompatible"
	AttributeNotApplicable      Kind = "Attribute-Not-Applicable"
	DeprecatedUse               Kind = "Deprecated-Use"
)

// Diagnostic is one reported error or warning.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Position typesys.SourcePosition
	Message  string
	// DocRef is an optional documentation reference, used by
	// Deprecated-Use warnings.
	DocRef string
}

// Sink is the consumed diagnostics contract: receives errors and warnings
// with a source position and a message. Implementations never block
// compilation — per the error handling design, a reported error does not
// stop analysis of dependent code.
type Sink interface {
	Report(d Diagnostic)
}

// ReportError is a convenience that builds and reports a SeverityError
// Diagnostic of the given kind.
func ReportError(sink Sink, kind Kind, pos typesys.SourcePosition, message string) {
	if sink == nil {
		return
	}
	sink.Report(Diagnostic{Kind: kind, Severity: SeverityError, Position: pos, Message: message})
}

// ReportWarning is a convenience that builds and reports a SeverityWarning
// Diagnostic of the given kind.
func ReportWarning(sink Sink, kind Kind, pos typesys.SourcePosition, message string, docRef string) {
	if sink == nil {
		return
	}
	sink.Report(Diagnostic{Kind: kind, Severity: SeverityWarning, Position: pos, Message: message, DocRef: docRef})
}
