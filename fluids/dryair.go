package fluids

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// DryAir is an immutable snapshot of dry air at a given pressure and
// dry-bulb temperature, with every derived property computed once at
// construction (spec.md §3).
type DryAir struct {
	pressure    quantity.Pressure
	temperature quantity.Temperature

	density             quantity.Density
	specificHeat        quantity.SpecificHeat
	specificEnthalpy    quantity.SpecificEnthalpy
	dynamicViscosity    float64 // Pa*s
	kinematicViscosity  float64 // m^2/s
	thermalConductivity float64 // W/(m*K)
}

// DryAirOf constructs a validated DryAir snapshot.
func DryAirOf(p quantity.Pressure, t quantity.Temperature) (DryAir, error) {
	if p.GetInPascal() < 0 {
		return DryAir{}, xerrors.OutOfBounds("dry air pressure", p.GetInPascal(), 0, 1e12)
	}
	tC := t.GetInCelsius()
	if tC < -150 || tC > 1000 {
		return DryAir{}, xerrors.OutOfBounds("dry air temperature", tC, -150, 1000)
	}

	rho, err := equations.DryAirDensity(tC, p.GetInPascal())
	if err != nil {
		return DryAir{}, err
	}
	nu, err := equations.DryAirKinematicViscosity(tC, p.GetInPascal())
	if err != nil {
		return DryAir{}, err
	}

	return DryAir{
		pressure:            p,
		temperature:         t,
		density:             quantity.DensityOfKilogramPerCubicMeter(rho),
		specificHeat:        quantity.SpecificHeatOfKiloJoulePerKilogramKelvin(equations.DryAirSpecificHeat(tC)),
		specificEnthalpy:    quantity.SpecificEnthalpyOfKiloJoulePerKilogram(equations.DryAirSpecificEnthalpy(tC)),
		dynamicViscosity:    equations.DryAirDynamicViscosity(tC),
		kinematicViscosity:  nu,
		thermalConductivity: equations.DryAirThermalConductivity(tC),
	}, nil
}

func (a DryAir) Pressure() quantity.Pressure                 { return a.pressure }
func (a DryAir) Temperature() quantity.Temperature           { return a.temperature }
func (a DryAir) Density() quantity.Density                   { return a.density }
func (a DryAir) SpecificHeat() quantity.SpecificHeat         { return a.specificHeat }
func (a DryAir) SpecificEnthalpy() quantity.SpecificEnthalpy { return a.specificEnthalpy }
func (a DryAir) DynamicViscosity() float64                   { return a.dynamicViscosity }
func (a DryAir) KinematicViscosity() float64                 { return a.kinematicViscosity }
func (a DryAir) ThermalConductivity() float64                { return a.thermalConductivity }

// WithTemperature returns a new DryAir snapshot at the given temperature,
// keeping the same pressure.
func (a DryAir) WithTemperature(t quantity.Temperature) (DryAir, error) {
	return DryAirOf(a.pressure, t)
}

// WithPressure returns a new DryAir snapshot at the given pressure, keeping
// the same temperature.
func (a DryAir) WithPressure(p quantity.Pressure) (DryAir, error) {
	return DryAirOf(p, a.temperature)
}

// IsEqualWithPrecision compares pressure and temperature within eps.
func (a DryAir) IsEqualWithPrecision(other DryAir, eps float64) bool {
	return a.pressure.IsEqualWithPrecision(other.pressure, eps) &&
		a.temperature.IsEqualWithPrecision(other.temperature, eps)
}

// ToConsoleOutput is a pure formatting method; it has no effect on state.
func (a DryAir) ToConsoleOutput() string {
	return fmt.Sprintf("DryAir{P=%s, t=%s, rho=%s, cp=%s, i=%s}",
		a.pressure, a.temperature, a.density, a.specificHeat, a.specificEnthalpy)
}
