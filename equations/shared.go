// Package equations implements the engine's pure, side-effect-free
// correlations: closed-form empirical fits over float64 for dry air, water
// vapour, liquid water and humid air, plus the shared constants and mass-
// flow conversions every other layer builds on. No equation here logs or
// retains state between calls; the Brent-based inversions allocate a fresh
// solver per call. Range validation is the caller's (fluid constructor's)
// job, except for the liquid-water correlations, which return
// xerrors.ErrArgumentOutOfBounds outside 0..200 degC. Grounded on
// gofem's mdl/retention and mdl/solid style: named constants at file scope,
// one doc comment per exported function naming the correlation it implements.
package equations

import (
	"math"

	"github.com/pjazdzyk/hvac-engine-sub005/engineering/defaults"
)

// Molar masses, in kg/kmol.
const (
	MolarMassDryAir     = 28.9645
	MolarMassWaterVapor = 18.0153
)

// Specific gas constants, in J/(kg*K).
const (
	SpecificGasConstantDryAir     = 287.042
	SpecificGasConstantWaterVapor = 461.52
)

// WaterToDryAirMolarMassRatio is the 0.622 constant spec.md's humidity-ratio
// and max-humidity-ratio invariants are stated in terms of
// (MolarMassWaterVapor/MolarMassDryAir rounds to 0.622).
const WaterToDryAirMolarMassRatio = 0.622

// LatentHeatOfVaporization0C is r in spec.md's specific-enthalpy invariant
// i = cp_da*t + x*(r + cp_wv*t), in kJ/kg.
const LatentHeatOfVaporization0C = defaults.LatentHeatOfVaporization0C

// CelsiusToKelvin converts a Celsius temperature to Kelvin. This and the
// standard-atmosphere constant are the only unit conversions the core owns
// (spec.md §6); everything else is delegated to package quantity.
func CelsiusToKelvin(tC float64) float64 { return tC + defaults.ZeroCelsiusKelvin }

// Sutherland's law constants for dynamic viscosity: mu(T) = mu0 * (T0+C)/(T+C) * (T/T0)^1.5
type sutherlandConstants struct {
	mu0, t0, c float64 // mu0 in Pa*s, t0 and c in Kelvin
}

func sutherlandViscosity(tC float64, s sutherlandConstants) float64 {
	t := CelsiusToKelvin(tC)
	return s.mu0 * (s.t0 + s.c) / (t + s.c) * math.Pow(t/s.t0, 1.5)
}
