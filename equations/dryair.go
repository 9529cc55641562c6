package equations

import (
	"math"

	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

var dryAirSutherland = sutherlandConstants{mu0: 1.716e-5, t0: 273.15, c: 110.4}

// DryAirDensity computes the dry-air density at dry-bulb temperature tC and
// absolute pressure pPa, via the ideal-gas law rho = P/(Rda*T).
func DryAirDensity(tC, pPa float64) (float64, error) {
	t := CelsiusToKelvin(tC)
	if t <= 0 {
		return 0, xerrors.NumericalError("dry air density: absolute temperature %g K is not positive", t)
	}
	return pPa / (SpecificGasConstantDryAir * t), nil
}

// DryAirSpecificHeat computes the dry-air specific heat at constant
// pressure, in kJ/(kg*K), as a mild linear function of temperature.
func DryAirSpecificHeat(tC float64) float64 {
	return 1.005 + 0.000025*tC
}

// DryAirSpecificEnthalpy computes the dry-air specific enthalpy, in kJ/kg,
// zero at 0 degC.
func DryAirSpecificEnthalpy(tC float64) float64 {
	return DryAirSpecificHeat(tC) * tC
}

// DryAirDynamicViscosity computes the dry-air dynamic viscosity, in Pa*s,
// via Sutherland's law.
func DryAirDynamicViscosity(tC float64) float64 {
	return sutherlandViscosity(tC, dryAirSutherland)
}

// DryAirKinematicViscosity computes the dry-air kinematic viscosity, in
// m^2/s, from its dynamic viscosity and density.
func DryAirKinematicViscosity(tC, pPa float64) (float64, error) {
	rho, err := DryAirDensity(tC, pPa)
	if err != nil {
		return 0, err
	}
	if rho == 0 {
		return 0, xerrors.NumericalError("dry air kinematic viscosity: density is zero")
	}
	return DryAirDynamicViscosity(tC) / rho, nil
}

// DryAirThermalConductivity computes the dry-air thermal conductivity, in
// W/(m*K), as a mild linear function of temperature.
func DryAirThermalConductivity(tC float64) float64 {
	return 0.0241 + 0.00007*tC
}

// DryAirPrandtlNumber computes the dimensionless Prandtl number
// Pr = mu*cp/k for dry air at tC.
func DryAirPrandtlNumber(tC float64) float64 {
	mu := DryAirDynamicViscosity(tC)
	cp := DryAirSpecificHeat(tC) * 1000 // kJ/(kg*K) -> J/(kg*K)
	k := DryAirThermalConductivity(tC)
	return mu * cp / k
}

// validateAbsoluteTemperature is a helper shared by the property correlations
// that must fail loudly (never NaN) when the Kelvin temperature is non-positive.
func validateAbsoluteTemperature(tC float64) error {
	if math.IsNaN(tC) || CelsiusToKelvin(tC) <= 0 {
		return xerrors.NumericalError("temperature %g degC yields a non-positive absolute temperature", tC)
	}
	return nil
}
