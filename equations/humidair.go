package equations

import (
	"math"

	"github.com/pjazdzyk/hvac-engine-sub005/solver"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// Hyland-Wexler saturation-pressure coefficients (ASHRAE 2017 Handbook,
// Fundamentals, ch. 1, eq. 5 and 6). tC in Celsius, T in Kelvin, Ps in Pa.
const (
	iceC1 = -5674.5359
	iceC2 = 6.3925247
	iceC3 = -0.009677843
	iceC4 = 0.00000062215701
	iceC5 = 2.0747825e-9
	iceC6 = -9.484024e-13
	iceC7 = 4.1635019

	waterC8  = -5800.2206
	waterC9  = 1.3914993
	waterC10 = -0.048640239
	waterC11 = 0.41764768e-4
	waterC12 = -0.14452093e-7
	waterC13 = 6.5459673
)

// HumidAirSaturationPressure computes the saturation pressure of water
// vapour over ice (tC <= 0) or over liquid water (tC > 0), in Pa. The two
// branches are continuous to within 1 Pa at the 0 degC boundary.
func HumidAirSaturationPressure(tC float64) (float64, error) {
	if err := validateAbsoluteTemperature(tC); err != nil {
		return 0, err
	}
	t := CelsiusToKelvin(tC)
	var lnPs float64
	if tC <= 0 {
		lnPs = iceC1/t + iceC2 + iceC3*t + iceC4*t*t + iceC5*t*t*t + iceC6*t*t*t*t + iceC7*math.Log(t)
	} else {
		lnPs = waterC8/t + waterC9 + waterC10*t + waterC11*t*t + waterC12*t*t*t + waterC13*math.Log(t)
	}
	ps := math.Exp(lnPs)
	if math.IsNaN(ps) || math.IsInf(ps, 0) {
		return 0, xerrors.NumericalError("saturation pressure at %g degC is not finite", tC)
	}
	return ps, nil
}

// HumidAirMaxHumidityRatio computes the humidity ratio of saturated air,
// Xmax = 0.622*Ps/(Pat-Ps).
func HumidAirMaxHumidityRatio(psPa, patPa float64) (float64, error) {
	denom := patPa - psPa
	if denom <= 0 {
		return 0, xerrors.NumericalError("max humidity ratio: Pat-Ps = %g is not positive (Pat=%g, Ps=%g)", denom, patPa, psPa)
	}
	return WaterToDryAirMolarMassRatio * psPa / denom, nil
}

// HumidAirHumidityRatio computes the humidity ratio from relative humidity
// rh (percent), saturation pressure psPa and atmospheric pressure patPa.
func HumidAirHumidityRatio(rh, psPa, patPa float64) (float64, error) {
	pw := rh / 100 * psPa
	denom := patPa - pw
	if denom <= 0 {
		return 0, xerrors.NumericalError("humidity ratio: Pat-Pw = %g is not positive (Pat=%g, Pw=%g)", denom, patPa, pw)
	}
	return WaterToDryAirMolarMassRatio * pw / denom, nil
}

// HumidAirWaterVapourPartialPressure computes Pw = x*Pat/(0.622+x).
func HumidAirWaterVapourPartialPressure(x, patPa float64) float64 {
	return x * patPa / (WaterToDryAirMolarMassRatio + x)
}

// HumidAirRelativeHumidity computes RH = 100*(Pw/Ps(t)), where
// Pw = x*Pat/(0.622+x).
func HumidAirRelativeHumidity(tC, x, patPa float64) (float64, error) {
	ps, err := HumidAirSaturationPressure(tC)
	if err != nil {
		return 0, err
	}
	if ps <= 0 {
		return 0, xerrors.NumericalError("relative humidity: saturation pressure is not positive")
	}
	pw := HumidAirWaterVapourPartialPressure(x, patPa)
	return 100 * pw / ps, nil
}

// HumidAirDensity computes the moist-air density via an ideal-gas mixture:
// rho = rho_da * (1+x) / (1 + x*Rwv/Rda).
func HumidAirDensity(tC, x, patPa float64) (float64, error) {
	rhoDa, err := DryAirDensity(tC, patPa)
	if err != nil {
		return 0, err
	}
	ratio := SpecificGasConstantWaterVapor / SpecificGasConstantDryAir
	return rhoDa * (1 + x) / (1 + ratio*x), nil
}

// HumidAirSpecificEnthalpy computes the humid-air specific enthalpy, in
// kJ/kg dry air: i = cp_da(t)*t + x*(r + cp_wv(t)*t).
func HumidAirSpecificEnthalpy(tC, x float64) float64 {
	return DryAirSpecificHeat(tC)*tC + x*(LatentHeatOfVaporization0C+WaterVapourSpecificHeat(tC)*tC)
}

// HumidAirDryBulbTemperature inverts HumidAirSpecificEnthalpy via Brent:
// finds tC such that HumidAirSpecificEnthalpy(tC, x) == iTarget.
func HumidAirDryBulbTemperature(iTarget, x float64) (float64, error) {
	f := func(tC float64) float64 { return HumidAirSpecificEnthalpy(tC, x) - iTarget }
	s := solver.NewBrent()
	return s.FindRoot(f, -100, 200)
}

// HumidAirWetBulbTemperature solves the adiabatic-saturation energy balance
// for the thermodynamic wet-bulb temperature at pressure patPa, via Brent:
// finds twb such that cp_da(t)*t + x*(r+cp_wv(t)*t)
//
//	== cp_da(twb)*twb + Xmax(twb,Pat)*(r+cp_wv(twb)*twb)
//	   - (Xmax(twb,Pat)-x)*iWater(twb)
func HumidAirWetBulbTemperature(tC, x, patPa float64) (float64, error) {
	iIn := HumidAirSpecificEnthalpy(tC, x)
	f := func(twb float64) float64 {
		ps, err := HumidAirSaturationPressure(twb)
		if err != nil {
			return math.NaN()
		}
		xs, err := HumidAirMaxHumidityRatio(ps, patPa)
		if err != nil {
			return math.NaN()
		}
		iSat := HumidAirSpecificEnthalpy(twb, xs)
		iWater, err := LiquidWaterSpecificEnthalpy(twb)
		if err != nil {
			iWater = twb * 4.186
		}
		return iSat - (xs-x)*iWater - iIn
	}
	s := solver.NewBrent()
	lo, hi := tC-60, tC+1
	root, err := s.FindRoot(f, lo, hi)
	if err != nil {
		return 0, err
	}
	return root, nil
}

// HumidAirDewPointTemperature solves Ps(Tdp) == Pw for the dew-point
// temperature, via Brent.
func HumidAirDewPointTemperature(tC, x, patPa float64) (float64, error) {
	pw := HumidAirWaterVapourPartialPressure(x, patPa)
	f := func(tdp float64) float64 {
		ps, err := HumidAirSaturationPressure(tdp)
		if err != nil {
			return math.NaN()
		}
		return ps - pw
	}
	s := solver.NewBrent()
	return s.FindRoot(f, -100, tC+1)
}

// HumidAirDynamicViscosity computes the moist-air dynamic viscosity as the
// mass-weighted average of its dry-air and water-vapour components.
func HumidAirDynamicViscosity(tC, x float64) float64 {
	wDa, wWv := massFractions(x)
	return wDa*DryAirDynamicViscosity(tC) + wWv*WaterVapourDynamicViscosity(tC)
}

// HumidAirKinematicViscosity computes the moist-air kinematic viscosity.
func HumidAirKinematicViscosity(tC, x, patPa float64) (float64, error) {
	rho, err := HumidAirDensity(tC, x, patPa)
	if err != nil {
		return 0, err
	}
	if rho == 0 {
		return 0, xerrors.NumericalError("kinematic viscosity: density is zero")
	}
	return HumidAirDynamicViscosity(tC, x) / rho, nil
}

// HumidAirThermalConductivity computes the moist-air thermal conductivity as
// the mass-weighted average of its dry-air and water-vapour components.
func HumidAirThermalConductivity(tC, x float64) float64 {
	wDa, wWv := massFractions(x)
	return wDa*DryAirThermalConductivity(tC) + wWv*WaterVapourThermalConductivity(tC)
}

// HumidAirThermalDiffusivity computes alpha = k/(rho*cp).
func HumidAirThermalDiffusivity(tC, x, patPa float64) (float64, error) {
	rho, err := HumidAirDensity(tC, x, patPa)
	if err != nil {
		return 0, err
	}
	k := HumidAirThermalConductivity(tC, x)
	cp := (DryAirSpecificHeat(tC) + x*WaterVapourSpecificHeat(tC)) / (1 + x) * 1000 // kJ/(kg*K) -> J/(kg*K)
	if rho == 0 || cp == 0 {
		return 0, xerrors.NumericalError("thermal diffusivity: rho*cp is zero")
	}
	return k / (rho * cp), nil
}

// HumidAirPrandtlNumber computes Pr = mu*cp/k for moist air.
func HumidAirPrandtlNumber(tC, x float64) float64 {
	mu := HumidAirDynamicViscosity(tC, x)
	cp := (DryAirSpecificHeat(tC) + x*WaterVapourSpecificHeat(tC)) / (1 + x) * 1000
	k := HumidAirThermalConductivity(tC, x)
	return mu * cp / k
}

// massFractions splits a humidity ratio x into the dry-air and water-vapour
// mass fractions of the overall humid-air mixture.
func massFractions(x float64) (dryAir, waterVapour float64) {
	return 1 / (1 + x), x / (1 + x)
}
