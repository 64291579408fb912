package diagnostics

import "sync"

// CollectingSink accumulates every reported Diagnostic in order, for
// callers (tests, a batch driver) that want to inspect the full set after
// a compilation pass rather than streaming it.
type CollectingSink struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewCollectingSink returns an empty CollectingSink.
func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

// Report appends d to the collected list.
func (s *CollectingSink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics = append(s.diagnostics, d)
}

// Diagnostics returns every Diagnostic reported so far, in report order.
func (s *CollectingSink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)
	return out
}

// Errors returns only the SeverityError diagnostics collected so far.
func (s *CollectingSink) Errors() []Diagnostic {
	return s.filter(SeverityError)
}

// Warnings returns only the SeverityWarning diagnostics collected so far.
func (s *CollectingSink) Warnings() []Diagnostic {
	return s.filter(SeverityWarning)
}

func (s *CollectingSink) filter(sev Severity) []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Diagnostic
	for _, d := range s.diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
