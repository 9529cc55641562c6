package quantity

import "fmt"

// HumidityRatio holds the mass of water vapour per unit mass of dry air,
// stored internally as a dimensionless kg/kg fraction.
type HumidityRatio struct {
	kgPerKg float64
}

// HumidityRatioOfKilogramPerKilogram constructs a HumidityRatio from a kg/kg value.
func HumidityRatioOfKilogramPerKilogram(x float64) HumidityRatio {
	return HumidityRatio{kgPerKg: x}
}

// GetInKilogramPerKilogram returns the humidity ratio in kg/kg.
func (x HumidityRatio) GetInKilogramPerKilogram() float64 { return x.kgPerKg }

// IsEqualWithPrecision reports whether x and other differ by no more than eps kg/kg.
func (x HumidityRatio) IsEqualWithPrecision(other HumidityRatio, eps float64) bool {
	return isEqualWithPrecision(x.kgPerKg, other.kgPerKg, eps)
}

// LessThanOrEqual reports whether x <= other.
func (x HumidityRatio) LessThanOrEqual(other HumidityRatio) bool { return x.kgPerKg <= other.kgPerKg }

// GreaterThan reports whether x > other.
func (x HumidityRatio) GreaterThan(other HumidityRatio) bool { return x.kgPerKg > other.kgPerKg }

// ToEngineering renders the humidity ratio for diagnostics and console output.
func (x HumidityRatio) ToEngineering() string {
	return fmt.Sprintf("%.6f kg/kg", x.kgPerKg)
}

func (x HumidityRatio) String() string { return x.ToEngineering() }
