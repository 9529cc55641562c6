package fluids

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// HumidAir is an immutable snapshot of humid air at a given pressure,
// dry-bulb temperature and humidity ratio, with every derived property of
// spec.md §3's table computed once at construction.
type HumidAir struct {
	pressure      quantity.Pressure
	temperature   quantity.Temperature
	humidityRatio quantity.HumidityRatio

	dryAir DryAir

	density             quantity.Density
	saturationPressure  quantity.Pressure
	maxHumidityRatio    quantity.HumidityRatio
	relativeHumidity    quantity.RelativeHumidity
	wetBulbTemperature  quantity.Temperature
	dewPointTemperature quantity.Temperature
	specificHeat        quantity.SpecificHeat
	specificEnthalpy    quantity.SpecificEnthalpy
	dynamicViscosity    float64
	kinematicViscosity  float64
	thermalConductivity float64
	thermalDiffusivity  float64
	prandtlNumber       float64
	vapourState         VapourState
}

// HumidAirOf constructs a validated HumidAir snapshot from pressure,
// dry-bulb temperature and humidity ratio.
func HumidAirOf(p quantity.Pressure, t quantity.Temperature, x quantity.HumidityRatio) (HumidAir, error) {
	if err := validateHumidAirInputs(p, t, x); err != nil {
		return HumidAir{}, err
	}
	return buildHumidAir(p, t, x)
}

// HumidAirOfRelativeHumidity constructs a validated HumidAir snapshot from
// pressure, dry-bulb temperature and relative humidity; the humidity ratio
// is derived first.
func HumidAirOfRelativeHumidity(p quantity.Pressure, t quantity.Temperature, rh quantity.RelativeHumidity) (HumidAir, error) {
	tC := t.GetInCelsius()
	ps, err := equations.HumidAirSaturationPressure(tC)
	if err != nil {
		return HumidAir{}, err
	}
	xVal, err := equations.HumidAirHumidityRatio(rh.GetInPercent(), ps, p.GetInPascal())
	if err != nil {
		return HumidAir{}, err
	}
	x := quantity.HumidityRatioOfKilogramPerKilogram(xVal)
	if err := validateHumidAirInputs(p, t, x); err != nil {
		return HumidAir{}, err
	}
	return buildHumidAir(p, t, x)
}

func validateHumidAirInputs(p quantity.Pressure, t quantity.Temperature, x quantity.HumidityRatio) error {
	if p.GetInPascal() <= 50000 {
		return xerrors.OutOfBounds("humid air pressure", p.GetInPascal(), 50000, 1e12)
	}
	tC := t.GetInCelsius()
	if tC < -150 || tC > 200 {
		return xerrors.OutOfBounds("humid air dry-bulb temperature", tC, -150, 200)
	}
	if x.GetInKilogramPerKilogram() < 0 {
		return xerrors.OutOfBounds("humid air humidity ratio", x.GetInKilogramPerKilogram(), 0, 1)
	}
	return nil
}

func buildHumidAir(p quantity.Pressure, t quantity.Temperature, x quantity.HumidityRatio) (HumidAir, error) {
	tC := t.GetInCelsius()
	xVal := x.GetInKilogramPerKilogram()
	patPa := p.GetInPascal()

	dryAir, err := DryAirOf(p, t)
	if err != nil {
		return HumidAir{}, err
	}

	ps, err := equations.HumidAirSaturationPressure(tC)
	if err != nil {
		return HumidAir{}, err
	}
	xMax, err := equations.HumidAirMaxHumidityRatio(ps, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	rh, err := equations.HumidAirRelativeHumidity(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	rho, err := equations.HumidAirDensity(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	twb, err := equations.HumidAirWetBulbTemperature(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	tdp, err := equations.HumidAirDewPointTemperature(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	alpha, err := equations.HumidAirThermalDiffusivity(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}
	nu, err := equations.HumidAirKinematicViscosity(tC, xVal, patPa)
	if err != nil {
		return HumidAir{}, err
	}

	cp := (equations.DryAirSpecificHeat(tC) + xVal*equations.WaterVapourSpecificHeat(tC)) / (1 + xVal)

	return HumidAir{
		pressure:            p,
		temperature:         t,
		humidityRatio:       x,
		dryAir:              dryAir,
		density:             quantity.DensityOfKilogramPerCubicMeter(rho),
		saturationPressure:  quantity.PressureOfPascal(ps),
		maxHumidityRatio:    quantity.HumidityRatioOfKilogramPerKilogram(xMax),
		relativeHumidity:    quantity.RelativeHumidityOfPercent(rh),
		wetBulbTemperature:  quantity.TemperatureOfCelsius(twb),
		dewPointTemperature: quantity.TemperatureOfCelsius(tdp),
		specificHeat:        quantity.SpecificHeatOfKiloJoulePerKilogramKelvin(cp),
		specificEnthalpy:    quantity.SpecificEnthalpyOfKiloJoulePerKilogram(equations.HumidAirSpecificEnthalpy(tC, xVal)),
		dynamicViscosity:    equations.HumidAirDynamicViscosity(tC, xVal),
		kinematicViscosity:  nu,
		thermalConductivity: equations.HumidAirThermalConductivity(tC, xVal),
		thermalDiffusivity:  alpha,
		prandtlNumber:       equations.HumidAirPrandtlNumber(tC, xVal),
		vapourState:         classifyVapourState(xVal, xMax, tC),
	}, nil
}

func (h HumidAir) Pressure() quantity.Pressure                 { return h.pressure }
func (h HumidAir) Temperature() quantity.Temperature           { return h.temperature }
func (h HumidAir) HumidityRatio() quantity.HumidityRatio       { return h.humidityRatio }
func (h HumidAir) DryAir() DryAir                              { return h.dryAir }
func (h HumidAir) Density() quantity.Density                   { return h.density }
func (h HumidAir) SaturationPressure() quantity.Pressure       { return h.saturationPressure }
func (h HumidAir) MaxHumidityRatio() quantity.HumidityRatio    { return h.maxHumidityRatio }
func (h HumidAir) RelativeHumidity() quantity.RelativeHumidity { return h.relativeHumidity }
func (h HumidAir) WetBulbTemperature() quantity.Temperature    { return h.wetBulbTemperature }
func (h HumidAir) DewPointTemperature() quantity.Temperature   { return h.dewPointTemperature }
func (h HumidAir) SpecificHeat() quantity.SpecificHeat         { return h.specificHeat }
func (h HumidAir) SpecificEnthalpy() quantity.SpecificEnthalpy { return h.specificEnthalpy }
func (h HumidAir) DynamicViscosity() float64                   { return h.dynamicViscosity }
func (h HumidAir) KinematicViscosity() float64                 { return h.kinematicViscosity }
func (h HumidAir) ThermalConductivity() float64                { return h.thermalConductivity }
func (h HumidAir) ThermalDiffusivity() float64                 { return h.thermalDiffusivity }
func (h HumidAir) PrandtlNumber() float64                      { return h.prandtlNumber }
func (h HumidAir) VapourState() VapourState                    { return h.vapourState }

// WithTemperature returns a new HumidAir snapshot at the given dry-bulb
// temperature, keeping the same pressure and humidity ratio.
func (h HumidAir) WithTemperature(t quantity.Temperature) (HumidAir, error) {
	return HumidAirOf(h.pressure, t, h.humidityRatio)
}

// WithHumidityRatio returns a new HumidAir snapshot at the given humidity
// ratio, keeping the same pressure and dry-bulb temperature.
func (h HumidAir) WithHumidityRatio(x quantity.HumidityRatio) (HumidAir, error) {
	return HumidAirOf(h.pressure, h.temperature, x)
}

// WithRelativeHumidity returns a new HumidAir snapshot at the given relative
// humidity, keeping the same pressure and dry-bulb temperature.
func (h HumidAir) WithRelativeHumidity(rh quantity.RelativeHumidity) (HumidAir, error) {
	return HumidAirOfRelativeHumidity(h.pressure, h.temperature, rh)
}

// WithPressure returns a new HumidAir snapshot at the given pressure,
// keeping the same dry-bulb temperature and humidity ratio.
func (h HumidAir) WithPressure(p quantity.Pressure) (HumidAir, error) {
	return HumidAirOf(p, h.temperature, h.humidityRatio)
}

// IsEqualWithPrecision compares pressure, dry-bulb temperature and humidity
// ratio within eps.
func (h HumidAir) IsEqualWithPrecision(other HumidAir, eps float64) bool {
	return h.pressure.IsEqualWithPrecision(other.pressure, eps) &&
		h.temperature.IsEqualWithPrecision(other.temperature, eps) &&
		h.humidityRatio.IsEqualWithPrecision(other.humidityRatio, eps)
}

// ToConsoleOutput is a pure formatting method; it has no effect on state.
func (h HumidAir) ToConsoleOutput() string {
	return fmt.Sprintf("HumidAir{P=%s, t=%s, x=%s, RH=%s, i=%s, state=%s}",
		h.pressure, h.temperature, h.humidityRatio, h.relativeHumidity, h.specificEnthalpy, h.vapourState)
}
