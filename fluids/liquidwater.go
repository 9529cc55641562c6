package fluids

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// LiquidWater is an immutable snapshot of liquid water at a given pressure
// and temperature, valid over 0..200 degC (spec.md §3).
type LiquidWater struct {
	pressure    quantity.Pressure
	temperature quantity.Temperature

	density          quantity.Density
	specificHeat     quantity.SpecificHeat
	specificEnthalpy quantity.SpecificEnthalpy
}

// LiquidWaterOf constructs a validated LiquidWater snapshot.
func LiquidWaterOf(p quantity.Pressure, t quantity.Temperature) (LiquidWater, error) {
	if p.GetInPascal() <= 0 {
		return LiquidWater{}, xerrors.OutOfBounds("liquid water pressure", p.GetInPascal(), 0, 1e12)
	}
	tC := t.GetInCelsius()
	rho, err := equations.LiquidWaterDensity(tC)
	if err != nil {
		return LiquidWater{}, err
	}
	cp, err := equations.LiquidWaterSpecificHeat(tC)
	if err != nil {
		return LiquidWater{}, err
	}
	i, err := equations.LiquidWaterSpecificEnthalpy(tC)
	if err != nil {
		return LiquidWater{}, err
	}
	return LiquidWater{
		pressure:         p,
		temperature:      t,
		density:          quantity.DensityOfKilogramPerCubicMeter(rho),
		specificHeat:     quantity.SpecificHeatOfKiloJoulePerKilogramKelvin(cp),
		specificEnthalpy: quantity.SpecificEnthalpyOfKiloJoulePerKilogram(i),
	}, nil
}

func (w LiquidWater) Pressure() quantity.Pressure                 { return w.pressure }
func (w LiquidWater) Temperature() quantity.Temperature           { return w.temperature }
func (w LiquidWater) Density() quantity.Density                   { return w.density }
func (w LiquidWater) SpecificHeat() quantity.SpecificHeat         { return w.specificHeat }
func (w LiquidWater) SpecificEnthalpy() quantity.SpecificEnthalpy { return w.specificEnthalpy }

// WithTemperature returns a new LiquidWater snapshot at the given
// temperature, keeping the same pressure.
func (w LiquidWater) WithTemperature(t quantity.Temperature) (LiquidWater, error) {
	return LiquidWaterOf(w.pressure, t)
}

// IsEqualWithPrecision compares pressure and temperature within eps.
func (w LiquidWater) IsEqualWithPrecision(other LiquidWater, eps float64) bool {
	return w.pressure.IsEqualWithPrecision(other.pressure, eps) &&
		w.temperature.IsEqualWithPrecision(other.temperature, eps)
}

// ToConsoleOutput is a pure formatting method; it has no effect on state.
func (w LiquidWater) ToConsoleOutput() string {
	return fmt.Sprintf("LiquidWater{P=%s, t=%s, rho=%s, i=%s}", w.pressure, w.temperature, w.density, w.specificEnthalpy)
}
