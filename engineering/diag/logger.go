// Package diag provides the engine's optional diagnostic sink. Logging is
// ambient, not core state: the components that log (solver.Brent and
// process.Cooling) accept a Logger and default to NopLogger, a no-op
// (spec: "Logging is a no-op sink unless otherwise
// configured"). Grounded on gofem's global.Verbose + gosl/io.Pf* gated-print
// idiom (fem/solver.go), generalised into an explicit interface instead of a
// package-global flag so pipelines running concurrently in different
// goroutines never race on a shared verbosity switch.
package diag

import "github.com/cpmech/gosl/io"

// Logger receives optional tracing from the solver and process blocks:
// bracket widenings, bypass-factor clamping, and similar non-fatal notices.
type Logger interface {
	Tracef(format string, args ...any)
	Warnf(format string, args ...any)
}

// NopLogger discards everything. It is the default for every component that
// accepts a Logger.
type NopLogger struct{}

func (NopLogger) Tracef(format string, args ...any) {}
func (NopLogger) Warnf(format string, args ...any)  {}

// IOLogger backs Logger with gosl/io's colour-coded console printing.
// Tracef is silent unless Verbose is set; Warnf always prints in yellow.
type IOLogger struct {
	Verbose bool
}

func (l IOLogger) Tracef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	io.Pf(format+"\n", args...)
}

func (l IOLogger) Warnf(format string, args ...any) {
	io.PfYel(format+"\n", args...)
}
