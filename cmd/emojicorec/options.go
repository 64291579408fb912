package main

// Options configures one compilation run, grounded on pkg/compiler.Options
// in the teacher: a small struct threaded explicitly into the driver
// rather than read from module-scope globals.
type Options struct {
	// Verbose turns on warning-level diagnostics output in addition to errors.
	Verbose bool
	// WarningsAsErrors escalates every reported warning to a failing exit code.
	WarningsAsErrors bool
	// DrainQueue, when true, fully drains the compilation queue after
	// reachability analysis (enqueue-and-drain mode); when false, the
	// queue is left undrained and nothing is lowered or linked, leaving
	// draining to an embedding caller (enqueue-only mode).
	DrainQueue bool
}
