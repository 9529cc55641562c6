package quantity

import "github.com/gurre/si"

// Power holds a process heat rate, stored internally in watts. Positive
// values mean heat added to the air stream, negative mean heat removed
// (spec.md §4.5, §9).
type Power struct {
	watt float64
}

// PowerOfWatt constructs a Power from a watt value.
func PowerOfWatt(p float64) Power { return Power{watt: p} }

// PowerOfKilowatt constructs a Power from a kilowatt value.
func PowerOfKilowatt(p float64) Power { return Power{watt: p * 1000} }

// GetInWatt returns the power in watts.
func (p Power) GetInWatt() float64 { return p.watt }

// GetInKilowatt returns the power in kilowatts.
func (p Power) GetInKilowatt() float64 { return p.watt / 1000 }

// IsEqualWithPrecision reports whether p and other differ by no more than eps W.
func (p Power) IsEqualWithPrecision(other Power, eps float64) bool {
	return isEqualWithPrecision(p.watt, other.watt, eps)
}

// IsNegative reports whether this power represents heat removed from the air.
func (p Power) IsNegative() bool { return p.watt < 0 }

// Add returns the sum of p and other.
func (p Power) Add(other Power) Power { return Power{watt: p.watt + other.watt} }

// ToEngineering renders the power using si's Watt-dimensioned formatting,
// which auto-selects an SI prefix (W/kW/MW/GW) by magnitude.
func (p Power) ToEngineering() string {
	return si.Unit{Value: p.watt, Dimension: si.Watt.Dimension}.String()
}

func (p Power) String() string { return p.ToEngineering() }
