// Package solver implements Brent's root-finding method, the numerical
// kernel the equation layer uses to invert its closed-form correlations
// (e.g. recovering dry-bulb temperature from a target specific enthalpy).
// Grounded on gofem's per-call solver allocation idiom (mreten.Update
// allocates a fresh ODE solver per call); here generalised from an implicit
// ODE step to a general-purpose root-finder. A Brent value is re-entrant
// but not thread-shared: callers create one instance per solve.
package solver

import (
	"math"

	"github.com/pjazdzyk/hvac-engine-sub005/engineering/defaults"
	"github.com/pjazdzyk/hvac-engine-sub005/engineering/diag"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// Brent finds a root of a continuous scalar function via the Brent-Dekker
// method, with automatic bracket widening when the initial interval does
// not already contain a sign change.
type Brent struct {
	Accuracy            float64 // convergence tolerance on |f(x*)|
	MaxIterations       int     // cap on Brent-Dekker kernel iterations
	MaxBracketWidenings int     // cap on automatic bracket-widening attempts
	EvaluationDiff      float64 // step used to widen an unbracketed interval
	Logger              diag.Logger

	a, b float64 // stored bracket, used by FindRootFromStoredBracket
}

// NewBrent returns a Brent solver configured with the engine's defaults.
func NewBrent() *Brent {
	return &Brent{
		Accuracy:            defaults.BrentAccuracy,
		MaxIterations:       defaults.BrentMaxIterations,
		MaxBracketWidenings: defaults.BrentMaxBracketWidenings,
		EvaluationDiff:      defaults.BrentEvaluationDiff,
		Logger:              diag.NopLogger{},
	}
}

// SetLogger overrides the diagnostic sink used while widening brackets.
func (s *Brent) SetLogger(l diag.Logger) { s.Logger = l }

// SetAccuracy overrides the convergence tolerance.
func (s *Brent) SetAccuracy(accuracy float64) { s.Accuracy = accuracy }

// SetMaxIterations overrides the Brent-Dekker iteration cap.
func (s *Brent) SetMaxIterations(n int) { s.MaxIterations = n }

// SetMaxBracketWidenings overrides the bracket-widening attempt cap.
func (s *Brent) SetMaxBracketWidenings(n int) { s.MaxBracketWidenings = n }

// SetEvaluationDiff overrides the bracket-widening step.
func (s *Brent) SetEvaluationDiff(diff float64) { s.EvaluationDiff = diff }

// FindRoot brackets and solves f on the initial interval [a, b], widening
// the bracket automatically if f(a) and f(b) share a sign.
func (s *Brent) FindRoot(f func(float64) float64, a, b float64) (float64, error) {
	s.a, s.b = a, b
	return s.FindRootFromStoredBracket(f)
}

// FindRootFromStoredBracket solves f using the bracket from the most recent
// FindRoot call (or the zero-valued bracket [0, 0] if none was set).
func (s *Brent) FindRootFromStoredBracket(f func(float64) float64) (float64, error) {
	a, b := s.a, s.b
	fa, fb := f(a), f(b)

	widenings := 0
	for fa*fb > 0 {
		if widenings >= s.MaxBracketWidenings {
			return 0, xerrors.NotBracketed(a, b, widenings)
		}
		// alternately probe outward in both directions
		if widenings%2 == 0 {
			b += s.EvaluationDiff * float64(widenings/2+1)
			fb = f(b)
		} else {
			a -= s.EvaluationDiff * float64(widenings/2+1)
			fa = f(a)
		}
		widenings++
		if s.Logger != nil {
			s.Logger.Tracef("brent: widened bracket to [%g, %g] after %d attempt(s)", a, b, widenings)
		}
	}

	s.a, s.b = a, b
	return s.brentKernel(f, a, fa, b, fb)
}

// brentKernel is the classic Brent-Dekker inverse-quadratic/secant/bisection
// hybrid, bracketed on entry (fa*fb <= 0).
func (s *Brent) brentKernel(f func(float64) float64, a, fa, b, fb float64) (float64, error) {
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	for i := 0; i < s.MaxIterations; i++ {
		if math.Abs(fb) <= s.Accuracy || b == a {
			return b, nil
		}

		var s2 float64
		if fa != fc && fb != fc {
			// inverse quadratic interpolation
			s2 = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// secant method
			s2 = b - fb*(b-a)/(fb-fa)
		}

		lo, hi := (3*a+b)/4, b
		if lo > hi {
			lo, hi = hi, lo
		}
		cond1 := s2 < lo || s2 > hi
		cond2 := mflag && math.Abs(s2-b) >= math.Abs(b-c)/2
		cond3 := !mflag && math.Abs(s2-b) >= math.Abs(c-d)/2
		cond4 := mflag && math.Abs(b-c) < s.Accuracy
		cond5 := !mflag && math.Abs(c-d) < s.Accuracy
		if cond1 || cond2 || cond3 || cond4 || cond5 {
			s2 = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs2 := f(s2)
		d = c
		c, fc = b, fb

		if fa*fs2 < 0 {
			b, fb = s2, fs2
		} else {
			a, fa = s2, fs2
		}

		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	if math.Abs(fb) <= s.Accuracy {
		return b, nil
	}
	return b, xerrors.NotConverged(s.MaxIterations, math.Abs(fb))
}
