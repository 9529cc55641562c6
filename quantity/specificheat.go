package quantity

import "fmt"

// SpecificHeat holds a specific heat capacity, stored internally in kJ/(kg*K).
type SpecificHeat struct {
	kJPerKgKelvin float64
}

// SpecificHeatOfKiloJoulePerKilogramKelvin constructs a SpecificHeat from a kJ/(kg*K) value.
func SpecificHeatOfKiloJoulePerKilogramKelvin(cp float64) SpecificHeat {
	return SpecificHeat{kJPerKgKelvin: cp}
}

// GetInKiloJoulePerKilogramKelvin returns the specific heat in kJ/(kg*K).
func (c SpecificHeat) GetInKiloJoulePerKilogramKelvin() float64 { return c.kJPerKgKelvin }

// IsEqualWithPrecision reports whether c and other differ by no more than eps kJ/(kg*K).
func (c SpecificHeat) IsEqualWithPrecision(other SpecificHeat, eps float64) bool {
	return isEqualWithPrecision(c.kJPerKgKelvin, other.kJPerKgKelvin, eps)
}

// ToEngineering renders the specific heat for diagnostics and console output.
func (c SpecificHeat) ToEngineering() string {
	return fmt.Sprintf("%.4f kJ/(kg*K)", c.kJPerKgKelvin)
}

func (c SpecificHeat) String() string { return c.ToEngineering() }
