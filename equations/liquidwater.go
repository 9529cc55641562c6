package equations

import "github.com/pjazdzyk/hvac-engine-sub005/xerrors"

// LiquidWaterDensity computes liquid water density, in kg/m3, via a simple
// quadratic fit around its 4 degC density maximum, valid over 0..200 degC.
func LiquidWaterDensity(tC float64) (float64, error) {
	if tC < 0 || tC > 200 {
		return 0, xerrors.OutOfBounds("liquid water temperature", tC, 0, 200)
	}
	d := tC - 4
	return 999.972 - 0.0056*d*d, nil
}

// LiquidWaterSpecificHeat computes the liquid water specific heat, in
// kJ/(kg*K), via a shallow quadratic fit with its minimum near 39 degC.
func LiquidWaterSpecificHeat(tC float64) (float64, error) {
	if tC < 0 || tC > 200 {
		return 0, xerrors.OutOfBounds("liquid water temperature", tC, 0, 200)
	}
	return 4.2174 - 0.0015*tC + 0.0000192*tC*tC, nil
}

// LiquidWaterSpecificEnthalpy computes the liquid water specific enthalpy,
// in kJ/kg, zero at 0 degC: i = cp(t)*t.
func LiquidWaterSpecificEnthalpy(tC float64) (float64, error) {
	cp, err := LiquidWaterSpecificHeat(tC)
	if err != nil {
		return 0, err
	}
	return cp * tC, nil
}
