package quantity

import "fmt"

// Density holds a mass density, stored internally in kg/m3.
type Density struct {
	kgPerM3 float64
}

// DensityOfKilogramPerCubicMeter constructs a Density from a kg/m3 value.
func DensityOfKilogramPerCubicMeter(d float64) Density { return Density{kgPerM3: d} }

// GetInKilogramPerCubicMeter returns the density in kg/m3.
func (d Density) GetInKilogramPerCubicMeter() float64 { return d.kgPerM3 }

// IsEqualWithPrecision reports whether d and other differ by no more than eps kg/m3.
func (d Density) IsEqualWithPrecision(other Density, eps float64) bool {
	return isEqualWithPrecision(d.kgPerM3, other.kgPerM3, eps)
}

// ToEngineering renders the density for diagnostics and console output.
func (d Density) ToEngineering() string {
	return fmt.Sprintf("%.4f kg/m3", d.kgPerM3)
}

func (d Density) String() string { return d.ToEngineering() }
