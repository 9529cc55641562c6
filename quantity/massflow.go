package quantity

import "fmt"

// MassFlow holds a mass flow rate, stored internally in kg/s.
type MassFlow struct {
	kgPerSecond float64
}

// MassFlowOfKilogramPerSecond constructs a MassFlow from a kg/s value.
func MassFlowOfKilogramPerSecond(g float64) MassFlow { return MassFlow{kgPerSecond: g} }

// MassFlowOfKilogramPerHour constructs a MassFlow from a kg/h value.
func MassFlowOfKilogramPerHour(g float64) MassFlow { return MassFlow{kgPerSecond: g / 3600} }

// GetInKilogramPerSecond returns the mass flow in kg/s.
func (g MassFlow) GetInKilogramPerSecond() float64 { return g.kgPerSecond }

// GetInKilogramPerHour returns the mass flow in kg/h.
func (g MassFlow) GetInKilogramPerHour() float64 { return g.kgPerSecond * 3600 }

// IsEqualWithPrecision reports whether g and other differ by no more than eps kg/s.
func (g MassFlow) IsEqualWithPrecision(other MassFlow, eps float64) bool {
	return isEqualWithPrecision(g.kgPerSecond, other.kgPerSecond, eps)
}

// Add returns the sum of g and other.
func (g MassFlow) Add(other MassFlow) MassFlow {
	return MassFlow{kgPerSecond: g.kgPerSecond + other.kgPerSecond}
}

// Sub returns g - other, floored at zero (condensate/outlet mass flows never go negative).
func (g MassFlow) Sub(other MassFlow) MassFlow {
	d := g.kgPerSecond - other.kgPerSecond
	if d < 0 {
		d = 0
	}
	return MassFlow{kgPerSecond: d}
}

// IsZero reports whether this mass flow is (numerically) zero.
func (g MassFlow) IsZero() bool { return g.kgPerSecond == 0 }

// ToEngineering renders the mass flow for diagnostics and console output.
func (g MassFlow) ToEngineering() string {
	return fmt.Sprintf("%.6f kg/s", g.kgPerSecond)
}

func (g MassFlow) String() string { return g.ToEngineering() }
