package quantity

import "fmt"

// BypassFactor holds the fraction of air that passes a cooling coil without
// contacting its surface (spec.md glossary). Dimensionless, 0..1 by
// construction in the process layer; stored unclamped here so callers can
// detect and flag an out-of-range derivation before clamping it.
type BypassFactor struct {
	fraction float64
}

// BypassFactorOf constructs a BypassFactor from a dimensionless fraction.
func BypassFactorOf(bf float64) BypassFactor { return BypassFactor{fraction: bf} }

// GetValue returns the bypass factor as a dimensionless fraction.
func (bf BypassFactor) GetValue() float64 { return bf.fraction }

// IsEqualWithPrecision reports whether bf and other differ by no more than eps.
func (bf BypassFactor) IsEqualWithPrecision(other BypassFactor, eps float64) bool {
	return isEqualWithPrecision(bf.fraction, other.fraction, eps)
}

// Clamp returns bf clamped to [0, 1] and whether clamping changed the value.
func (bf BypassFactor) Clamp() (BypassFactor, bool) {
	if bf.fraction < 0 {
		return BypassFactor{fraction: 0}, true
	}
	if bf.fraction > 1 {
		return BypassFactor{fraction: 1}, true
	}
	return bf, false
}

// ToEngineering renders the bypass factor for diagnostics and console output.
func (bf BypassFactor) ToEngineering() string {
	return fmt.Sprintf("%.4f", bf.fraction)
}

func (bf BypassFactor) String() string { return bf.ToEngineering() }
