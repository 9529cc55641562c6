package quantity

import "fmt"

// SpecificEnthalpy holds a specific enthalpy per kg of dry air, stored
// internally in kJ/kg (spec.md §3: "zero at 0 degC dry air with zero humidity").
type SpecificEnthalpy struct {
	kJPerKg float64
}

// SpecificEnthalpyOfKiloJoulePerKilogram constructs a SpecificEnthalpy from a kJ/kg value.
func SpecificEnthalpyOfKiloJoulePerKilogram(i float64) SpecificEnthalpy {
	return SpecificEnthalpy{kJPerKg: i}
}

// GetInKiloJoulePerKilogram returns the specific enthalpy in kJ/kg.
func (i SpecificEnthalpy) GetInKiloJoulePerKilogram() float64 { return i.kJPerKg }

// IsEqualWithPrecision reports whether i and other differ by no more than eps kJ/kg.
func (i SpecificEnthalpy) IsEqualWithPrecision(other SpecificEnthalpy, eps float64) bool {
	return isEqualWithPrecision(i.kJPerKg, other.kJPerKg, eps)
}

// Sub returns i - other.
func (i SpecificEnthalpy) Sub(other SpecificEnthalpy) SpecificEnthalpy {
	return SpecificEnthalpy{kJPerKg: i.kJPerKg - other.kJPerKg}
}

// ToEngineering renders the specific enthalpy for diagnostics and console output.
func (i SpecificEnthalpy) ToEngineering() string {
	return fmt.Sprintf("%.3f kJ/kg", i.kJPerKg)
}

func (i SpecificEnthalpy) String() string { return i.ToEngineering() }
