// Package quantity is the engine's stand-in for the physical-quantities
// collaborator spec.md describes as external and out of scope. It is kept
// intentionally thin: one small value type per quantity the engine touches,
// each with of<Unit> constructors, getIn<Unit> getters, precision-aware
// equality and ordering, and an engineering-format string. Besides °C<->K,
// the only conversions here are the fixed-factor ones behind the named
// constructors and getters (hPa, kPa, kW, kg/h, m3/h, mm).
package quantity

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/engineering/defaults"
)

// Temperature holds a dry-bulb (or coil, or steam) temperature, stored
// internally in Celsius.
type Temperature struct {
	celsius float64
}

// TemperatureOfCelsius constructs a Temperature from a Celsius value.
func TemperatureOfCelsius(t float64) Temperature {
	return Temperature{celsius: t}
}

// TemperatureOfKelvin constructs a Temperature from a Kelvin value.
func TemperatureOfKelvin(t float64) Temperature {
	return Temperature{celsius: t - defaults.ZeroCelsiusKelvin}
}

// GetInCelsius returns the temperature in degrees Celsius.
func (t Temperature) GetInCelsius() float64 { return t.celsius }

// GetInKelvin returns the temperature in Kelvin.
func (t Temperature) GetInKelvin() float64 { return t.celsius + defaults.ZeroCelsiusKelvin }

// IsEqualWithPrecision reports whether t and other differ by no more than eps degC.
func (t Temperature) IsEqualWithPrecision(other Temperature, eps float64) bool {
	return isEqualWithPrecision(t.celsius, other.celsius, eps)
}

// LessThan reports whether t is strictly colder than other.
func (t Temperature) LessThan(other Temperature) bool { return t.celsius < other.celsius }

// GreaterThan reports whether t is strictly warmer than other.
func (t Temperature) GreaterThan(other Temperature) bool { return t.celsius > other.celsius }

// ToEngineering renders the temperature for diagnostics and console output.
func (t Temperature) ToEngineering() string {
	return fmt.Sprintf("%.3f degC", t.celsius)
}

func (t Temperature) String() string { return t.ToEngineering() }
