package quantity

import (
	"github.com/gurre/si"
)

// Pressure holds an absolute pressure, stored internally in pascals.
type Pressure struct {
	pascal float64
}

// PressureOfPascal constructs a Pressure from a pascal value.
func PressureOfPascal(p float64) Pressure { return Pressure{pascal: p} }

// PressureOfHectopascal constructs a Pressure from a hectopascal value.
func PressureOfHectopascal(p float64) Pressure { return Pressure{pascal: p * 100} }

// PressureOfKilopascal constructs a Pressure from a kilopascal value.
func PressureOfKilopascal(p float64) Pressure { return Pressure{pascal: p * 1000} }

// GetInPascal returns the pressure in pascals.
func (p Pressure) GetInPascal() float64 { return p.pascal }

// GetInKilopascal returns the pressure in kilopascals.
func (p Pressure) GetInKilopascal() float64 { return p.pascal / 1000 }

// IsEqualWithPrecision reports whether p and other differ by no more than eps Pa.
func (p Pressure) IsEqualWithPrecision(other Pressure, eps float64) bool {
	return isEqualWithPrecision(p.pascal, other.pascal, eps)
}

// LessThan reports whether p is strictly lower than other.
func (p Pressure) LessThan(other Pressure) bool { return p.pascal < other.pascal }

// GreaterThan reports whether p is strictly higher than other.
func (p Pressure) GreaterThan(other Pressure) bool { return p.pascal > other.pascal }

// ToEngineering renders the pressure using si's Pascal-dimensioned formatting.
func (p Pressure) ToEngineering() string {
	return si.Unit{Value: p.pascal, Dimension: si.Pascal.Dimension}.String()
}

func (p Pressure) String() string { return p.ToEngineering() }
