// Package xerrors implements the error taxonomy shared by every layer of
// the psychrometrics engine: the equation layer, the solver, the fluid and
// flow entities, and the process blocks. Every error constructed here wraps
// one of the sentinel values below so callers can classify a failure with
// errors.Is without parsing message text.
package xerrors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is classification.
var (
	// ErrMissingArgument marks a required input that was nil/absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrArgumentOutOfBounds marks a scalar outside its validated range.
	ErrArgumentOutOfBounds = errors.New("argument out of bounds")
	// ErrIncompatibleState marks a semantically invalid combination of inputs.
	ErrIncompatibleState = errors.New("incompatible state")
	// ErrNotBracketed marks a Brent solve that could not find a sign change.
	ErrNotBracketed = errors.New("root not bracketed")
	// ErrNotConverged marks a Brent solve that exceeded its iteration cap.
	ErrNotConverged = errors.New("root solve did not converge")
	// ErrNumericalError marks a division-by-zero or NaN from a correlation.
	ErrNumericalError = errors.New("numerical error")
)

// MissingArgument reports that name was required but absent.
func MissingArgument(name string) error {
	return fmt.Errorf("%s: %w", name, ErrMissingArgument)
}

// OutOfBounds reports that name's value lies outside [lo, hi].
func OutOfBounds(name string, value, lo, hi float64) error {
	return fmt.Errorf("%s=%g outside allowed range [%g, %g]: %w", name, value, lo, hi, ErrArgumentOutOfBounds)
}

// IncompatibleState reports a semantically invalid combination of inputs,
// formatted like chk.Err in the gosl/chk package this module is styled on.
func IncompatibleState(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrIncompatibleState)...)
}

// NotBracketed reports that Brent's widening search failed to find a[,b] with f(a)*f(b) <= 0.
func NotBracketed(a, b float64, widenings int) error {
	return fmt.Errorf("no sign change found after %d bracket widenings, last bracket [%g, %g]: %w", widenings, a, b, ErrNotBracketed)
}

// NotConverged reports that Brent's kernel exceeded its iteration cap.
func NotConverged(maxIter int, lastResidual float64) error {
	return fmt.Errorf("exceeded %d iterations, last |f(x)|=%g: %w", maxIter, lastResidual, ErrNotConverged)
}

// NumericalError reports a division-by-zero or NaN produced by a correlation.
func NumericalError(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNumericalError)...)
}
