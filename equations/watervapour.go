package equations

import "github.com/pjazdzyk/hvac-engine-sub005/xerrors"

var waterVapourSutherland = sutherlandConstants{mu0: 9.0e-6, t0: 273.15, c: 961.0}

// WaterVapourDensity computes water vapour density at partial pressure pPa
// (Pa) and temperature tC, via the ideal-gas law rho = P/(Rwv*T).
func WaterVapourDensity(tC, pPa float64) (float64, error) {
	t := CelsiusToKelvin(tC)
	if t <= 0 {
		return 0, xerrors.NumericalError("water vapour density: absolute temperature %g K is not positive", t)
	}
	return pPa / (SpecificGasConstantWaterVapor * t), nil
}

// WaterVapourDensityFromRelativeHumidity computes water vapour density given
// the saturation pressure psPa at tC, the relative humidity rh (percent) and
// the total atmospheric pressure patPa: first derives the partial pressure,
// then applies the ideal-gas law.
func WaterVapourDensityFromRelativeHumidity(tC, rh, psPa, patPa float64) (float64, error) {
	pw := rh / 100 * psPa
	if pw > patPa {
		return 0, xerrors.IncompatibleState("water vapour partial pressure %g Pa exceeds atmospheric pressure %g Pa", pw, patPa)
	}
	return WaterVapourDensity(tC, pw)
}

// WaterVapourSpecificHeat computes the water vapour specific heat at
// constant pressure, in kJ/(kg*K), as a mild linear function of temperature.
func WaterVapourSpecificHeat(tC float64) float64 {
	return 1.86 + 0.0003*tC
}

// WaterVapourSpecificEnthalpy computes the water vapour specific enthalpy,
// in kJ/kg, referenced to liquid water at 0 degC: i = r + cp_wv(t)*t.
func WaterVapourSpecificEnthalpy(tC float64) float64 {
	return LatentHeatOfVaporization0C + WaterVapourSpecificHeat(tC)*tC
}

// WaterVapourDynamicViscosity computes the water vapour dynamic viscosity,
// in Pa*s, via Sutherland's law.
func WaterVapourDynamicViscosity(tC float64) float64 {
	return sutherlandViscosity(tC, waterVapourSutherland)
}

// WaterVapourThermalConductivity computes the water vapour thermal
// conductivity, in W/(m*K), as a mild linear function of temperature.
func WaterVapourThermalConductivity(tC float64) float64 {
	return 0.0181 + 0.00006*tC
}
