package fluids

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// WaterVapour is an immutable snapshot of water vapour at its own partial
// pressure and temperature (spec.md §3).
type WaterVapour struct {
	pressure    quantity.Pressure
	temperature quantity.Temperature

	density             quantity.Density
	specificHeat        quantity.SpecificHeat
	specificEnthalpy    quantity.SpecificEnthalpy
	dynamicViscosity    float64
	kinematicViscosity  float64
	thermalConductivity float64
}

func validateWaterVapourTemperature(tC float64) error {
	if tC < -150 || tC > 1000 {
		return xerrors.OutOfBounds("water vapour temperature", tC, -150, 1000)
	}
	return nil
}

// WaterVapourOf constructs a validated WaterVapour snapshot whose pressure
// is the vapour's own partial pressure.
func WaterVapourOf(p quantity.Pressure, t quantity.Temperature) (WaterVapour, error) {
	tC := t.GetInCelsius()
	if err := validateWaterVapourTemperature(tC); err != nil {
		return WaterVapour{}, err
	}
	if p.GetInPascal() < 0 {
		return WaterVapour{}, xerrors.OutOfBounds("water vapour pressure", p.GetInPascal(), 0, 1e12)
	}
	rho, err := equations.WaterVapourDensity(tC, p.GetInPascal())
	if err != nil {
		return WaterVapour{}, err
	}
	return buildWaterVapour(p, t, tC, rho), nil
}

// WaterVapourOfRelativeHumidity constructs a validated WaterVapour snapshot
// from a relative humidity at an atmospheric pressure (spec.md §3's "[RH,
// Pat for density]" annotation): the partial pressure is derived first, then
// every other property follows from it.
func WaterVapourOfRelativeHumidity(atmPressure quantity.Pressure, t quantity.Temperature, rh quantity.RelativeHumidity) (WaterVapour, error) {
	tC := t.GetInCelsius()
	if err := validateWaterVapourTemperature(tC); err != nil {
		return WaterVapour{}, err
	}
	ps, err := equations.HumidAirSaturationPressure(tC)
	if err != nil {
		return WaterVapour{}, err
	}
	rho, err := equations.WaterVapourDensityFromRelativeHumidity(tC, rh.GetInPercent(), ps, atmPressure.GetInPascal())
	if err != nil {
		return WaterVapour{}, err
	}
	pw := rh.GetInPercent() / 100 * ps
	return buildWaterVapour(quantity.PressureOfPascal(pw), t, tC, rho), nil
}

func buildWaterVapour(p quantity.Pressure, t quantity.Temperature, tC, rho float64) WaterVapour {
	return WaterVapour{
		pressure:            p,
		temperature:         t,
		density:             quantity.DensityOfKilogramPerCubicMeter(rho),
		specificHeat:        quantity.SpecificHeatOfKiloJoulePerKilogramKelvin(equations.WaterVapourSpecificHeat(tC)),
		specificEnthalpy:    quantity.SpecificEnthalpyOfKiloJoulePerKilogram(equations.WaterVapourSpecificEnthalpy(tC)),
		dynamicViscosity:    equations.WaterVapourDynamicViscosity(tC),
		kinematicViscosity:  equations.WaterVapourDynamicViscosity(tC) / rho,
		thermalConductivity: equations.WaterVapourThermalConductivity(tC),
	}
}

func (v WaterVapour) Pressure() quantity.Pressure                 { return v.pressure }
func (v WaterVapour) Temperature() quantity.Temperature           { return v.temperature }
func (v WaterVapour) Density() quantity.Density                   { return v.density }
func (v WaterVapour) SpecificHeat() quantity.SpecificHeat         { return v.specificHeat }
func (v WaterVapour) SpecificEnthalpy() quantity.SpecificEnthalpy { return v.specificEnthalpy }
func (v WaterVapour) DynamicViscosity() float64                   { return v.dynamicViscosity }
func (v WaterVapour) KinematicViscosity() float64                 { return v.kinematicViscosity }
func (v WaterVapour) ThermalConductivity() float64                { return v.thermalConductivity }

// WithTemperature returns a new WaterVapour snapshot at the given
// temperature, keeping the same partial pressure.
func (v WaterVapour) WithTemperature(t quantity.Temperature) (WaterVapour, error) {
	return WaterVapourOf(v.pressure, t)
}

// IsEqualWithPrecision compares pressure and temperature within eps.
func (v WaterVapour) IsEqualWithPrecision(other WaterVapour, eps float64) bool {
	return v.pressure.IsEqualWithPrecision(other.pressure, eps) &&
		v.temperature.IsEqualWithPrecision(other.temperature, eps)
}

// ToConsoleOutput is a pure formatting method; it has no effect on state.
func (v WaterVapour) ToConsoleOutput() string {
	return fmt.Sprintf("WaterVapour{Pw=%s, t=%s, rho=%s, i=%s}", v.pressure, v.temperature, v.density, v.specificEnthalpy)
}
