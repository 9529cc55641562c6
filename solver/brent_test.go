package solver

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

func TestFindRootLinear(t *testing.T) {
	s := NewBrent()
	root, err := s.FindRoot(func(x float64) float64 { return x - 3 }, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "root", 1e-6, root, 3)
}

func TestFindRootCubic(t *testing.T) {
	s := NewBrent()
	// roots at x = -2, 1, 3; bracket around the root at x=1
	f := func(x float64) float64 { return (x + 2) * (x - 1) * (x - 3) }
	root, err := s.FindRoot(f, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "root", 1e-6, root, 1)
	if math.Abs(f(root)) > s.Accuracy {
		t.Fatalf("residual too large: f(%g) = %g", root, f(root))
	}
}

func TestFindRootWidensBracket(t *testing.T) {
	s := NewBrent()
	// root at x = 50, well outside the initial [0, 1] bracket
	root, err := s.FindRoot(func(x float64) float64 { return x - 50 }, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "root", 1e-6, root, 50)
}

func TestFindRootNotBracketed(t *testing.T) {
	s := NewBrent()
	s.MaxBracketWidenings = 3
	// f(x) = x^2 + 1 never crosses zero
	_, err := s.FindRoot(func(x float64) float64 { return x*x + 1 }, -1, 1)
	if !errors.Is(err, xerrors.ErrNotBracketed) {
		t.Fatalf("expected ErrNotBracketed, got %v", err)
	}
}

func TestFindRootDeterministic(t *testing.T) {
	f := func(x float64) float64 { return math.Sin(x) - 0.5 }
	r1, err1 := NewBrent().FindRoot(f, 0, 1)
	r2, err2 := NewBrent().FindRoot(f, 0, 1)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if r1 != r2 {
		t.Fatalf("solver is not deterministic: %v != %v", r1, r2)
	}
}

type recordingLogger struct {
	traces []string
}

func (l *recordingLogger) Tracef(format string, args ...any) {
	l.traces = append(l.traces, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {}

func TestFindRootLogsBracketWidening(t *testing.T) {
	s := NewBrent()
	logger := &recordingLogger{}
	s.SetLogger(logger)
	if _, err := s.FindRoot(func(x float64) float64 { return x - 50 }, 0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logger.traces) == 0 {
		t.Fatal("expected at least one bracket-widening trace")
	}
}

func TestFindRootFromStoredBracket(t *testing.T) {
	s := NewBrent()
	if _, err := s.FindRoot(func(x float64) float64 { return x - 3 }, 0, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, err := s.FindRootFromStoredBracket(func(x float64) float64 { return x - 3 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "root", 1e-6, root, 3)
}
