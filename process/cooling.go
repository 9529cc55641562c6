package process

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/engineering/diag"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// Cooling implements the bypass-factor contact-surface model of spec.md
// §4.5.3: air is conceptually split between a fraction BF that bypasses the
// coil unchanged and a fraction (1-BF) that contacts it and leaves
// saturated at the coil surface temperature t_cs.
type Cooling struct {
	inlet  connector.Input[flows.FlowOfHumidAir]
	outlet connector.Output[flows.FlowOfHumidAir]
	state  connector.State

	coilSurfaceTemperature quantity.Temperature
	mode                   ProcessMode
	targetPower            quantity.Power
	targetTemperature      quantity.Temperature
	targetRelativeHumidity quantity.RelativeHumidity
	logger                 diag.Logger
}

// CoolingOfPower configures a Cooling block in FROM_POWER mode.
func CoolingOfPower(tCs quantity.Temperature, power quantity.Power) *Cooling {
	return &Cooling{coilSurfaceTemperature: tCs, mode: ModeFromPower, targetPower: power, logger: diag.NopLogger{}}
}

// CoolingOfTemperature configures a Cooling block in FROM_TEMPERATURE mode.
func CoolingOfTemperature(tCs, tOut quantity.Temperature) *Cooling {
	return &Cooling{coilSurfaceTemperature: tCs, mode: ModeFromTemperature, targetTemperature: tOut, logger: diag.NopLogger{}}
}

// CoolingOfRelativeHumidity configures a Cooling block in FROM_HUMIDITY mode.
func CoolingOfRelativeHumidity(tCs quantity.Temperature, rh quantity.RelativeHumidity) *Cooling {
	return &Cooling{coilSurfaceTemperature: tCs, mode: ModeFromHumidity, targetRelativeHumidity: rh, logger: diag.NopLogger{}}
}

// SetLogger overrides the diagnostic sink used to report bypass-factor
// clamping.
func (c *Cooling) SetLogger(l diag.Logger) { c.logger = l }

func (c *Cooling) log() diag.Logger {
	if c.logger == nil {
		return diag.NopLogger{}
	}
	return c.logger
}

func (c *Cooling) InputConnector() *connector.Input[flows.FlowOfHumidAir]   { return &c.inlet }
func (c *Cooling) OutputConnector() *connector.Output[flows.FlowOfHumidAir] { return &c.outlet }
func (c *Cooling) ProcessType() ProcessType                                 { return TypeCooling }
func (c *Cooling) ProcessMode() ProcessMode                                  { return c.mode }

func (c *Cooling) ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir]) {
	c.inlet.ConnectAndConsumeDataFrom(source)
	c.state = connector.Ready
}

func (c *Cooling) ResetProcess() {
	c.outlet = connector.Output[flows.FlowOfHumidAir]{}
	c.state = connector.Ready
}

func (c *Cooling) Describe() dbf.Params {
	kv := map[string]float64{"t_cs": c.coilSurfaceTemperature.GetInCelsius()}
	switch c.mode {
	case ModeFromPower:
		kv["Q"] = c.targetPower.GetInWatt()
	case ModeFromTemperature:
		kv["t_out"] = c.targetTemperature.GetInCelsius()
	case ModeFromHumidity:
		kv["RH_out"] = c.targetRelativeHumidity.GetInPercent()
	}
	return describeParams(kv)
}

// Validate runs the t_cs/target pre-checks of spec.md §4.5.3 against the
// currently connected inlet.
func (c *Cooling) Validate() error {
	in, err := c.inlet.Get()
	if err != nil {
		return wrapBlockError(TypeCooling, c.mode, err)
	}
	air := in.HumidAir()
	tCsC := c.coilSurfaceTemperature.GetInCelsius()
	tInC := air.Temperature().GetInCelsius()

	if tCsC >= tInC {
		return wrapBlockError(TypeCooling, c.mode, xerrors.IncompatibleState("coil surface temperature %g must be < inlet temperature %g", tCsC, tInC))
	}
	if tCsC < 0 {
		return wrapBlockError(TypeCooling, c.mode, xerrors.IncompatibleState("coil surface temperature %g must be >= 0 degC", tCsC))
	}
	if c.mode == ModeFromPower && c.targetPower.GetInWatt() >= 0 {
		return wrapBlockError(TypeCooling, c.mode, xerrors.IncompatibleState("cooling power must be negative, got %g W", c.targetPower.GetInWatt()))
	}
	if c.mode == ModeFromTemperature {
		tOutC := c.targetTemperature.GetInCelsius()
		if !(tOutC >= tCsC && tOutC < tInC) {
			return wrapBlockError(TypeCooling, c.mode, xerrors.IncompatibleState("target temperature %g must lie in [%g, %g)", tOutC, tCsC, tInC))
		}
	}
	return nil
}

// contactOutcome computes the outlet humidity ratio, specific enthalpy and
// clamped bypass factor that follow from a candidate outlet dry-bulb
// temperature, per the bypass-factor mixing rule of spec.md §4.5.3.
func (c *Cooling) contactOutcome(tOutC, tInC, tCsC, xIn, iIn, patPa float64) (xOut, iOut, bf float64, clamped bool, err error) {
	psCs, err := equations.HumidAirSaturationPressure(tCsC)
	if err != nil {
		return 0, 0, 0, false, err
	}
	xCs, err := equations.HumidAirMaxHumidityRatio(psCs, patPa)
	if err != nil {
		return 0, 0, 0, false, err
	}
	iCs := equations.HumidAirSpecificEnthalpy(tCsC, xCs)

	if tInC == tCsC {
		bf = 1
	} else {
		bf = (tOutC - tCsC) / (tInC - tCsC)
	}
	if bf < 0 {
		bf, clamped = 0, true
	} else if bf > 1 {
		bf, clamped = 1, true
	}

	xOut = bf*xIn + (1-bf)*xCs
	iOut = bf*iIn + (1-bf)*iCs
	return xOut, iOut, bf, clamped, nil
}

// Run executes the bypass-factor cooling balance and publishes the outlet flow.
func (c *Cooling) Run() (ProcessResult, error) {
	if err := c.Validate(); err != nil {
		return ProcessResult{}, err
	}
	in, err := c.inlet.Get()
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
	}

	air := in.HumidAir()
	p := air.Pressure()
	patPa := p.GetInPascal()
	tInC := air.Temperature().GetInCelsius()
	tCsC := c.coilSurfaceTemperature.GetInCelsius()
	xIn := air.HumidityRatio().GetInKilogramPerKilogram()
	iIn := air.SpecificEnthalpy().GetInKiloJoulePerKilogram()
	gda := in.DryAirMassFlow().GetInKilogramPerSecond()

	var tOutC float64
	switch c.mode {
	case ModeFromTemperature:
		tOutC = c.targetTemperature.GetInCelsius()
	case ModeFromPower:
		targetQ := c.targetPower.GetInWatt()
		f := func(candidate float64) float64 {
			xOut, iOut, _, clamped, cErr := c.contactOutcome(candidate, tInC, tCsC, xIn, iIn, patPa)
			if cErr != nil {
				return 0
			}
			if clamped {
				c.log().Tracef("cooling/%s: bypass factor clamped while probing t_out=%g", c.mode, candidate)
			}
			mCond := gda * maxFloat(0, xIn-xOut)
			iWaterCs, iErr := equations.LiquidWaterSpecificEnthalpy(tCsC)
			if iErr != nil {
				return 0
			}
			q := gda*(iOut-iIn)*1000 - mCond*iWaterCs*1000
			return q - targetQ
		}
		tOutC, err = newBrentSolver().FindRoot(f, tCsC, tInC)
		if err != nil {
			return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
		}
	case ModeFromHumidity:
		target := c.targetRelativeHumidity.GetInPercent()
		f := func(candidate float64) float64 {
			xOut, _, _, clamped, cErr := c.contactOutcome(candidate, tInC, tCsC, xIn, iIn, patPa)
			if cErr != nil {
				return 0
			}
			if clamped {
				c.log().Tracef("cooling/%s: bypass factor clamped while probing t_out=%g", c.mode, candidate)
			}
			rh, rhErr := equations.HumidAirRelativeHumidity(candidate, xOut, patPa)
			if rhErr != nil {
				return 0
			}
			return rh - target
		}
		tOutC, err = newBrentSolver().FindRoot(f, tCsC, tInC)
		if err != nil {
			return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
		}
	}

	xOut, iOut, bf, clamped, err := c.contactOutcome(tOutC, tInC, tCsC, xIn, iIn, patPa)
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
	}
	if clamped {
		c.log().Warnf("cooling/%s: bypass factor clamped to %g, coil surface temperature bound exceeded", c.mode, bf)
	}
	mCond := gda * maxFloat(0, xIn-xOut)
	iWaterCs, err := equations.LiquidWaterSpecificEnthalpy(tCsC)
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
	}
	qWatt := gda*(iOut-iIn)*1000 - mCond*iWaterCs*1000

	outAir, err := fluids.HumidAirOf(p, quantity.TemperatureOfCelsius(tOutC), quantity.HumidityRatioOfKilogramPerKilogram(xOut))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
	}
	outFlow, err := flows.FlowOfHumidAirOfDryAirMassFlow(outAir, quantity.MassFlowOfKilogramPerSecond(gda))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, err)
	}

	var condensate *flows.FlowOfLiquidWater
	if mCond > 0 {
		water, wErr := fluids.LiquidWaterOf(p, c.coilSurfaceTemperature)
		if wErr != nil {
			return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, wErr)
		}
		cFlow, cErr := flows.FlowOfLiquidWaterOf(water, quantity.MassFlowOfKilogramPerSecond(mCond))
		if cErr != nil {
			return ProcessResult{}, wrapBlockError(TypeCooling, c.mode, cErr)
		}
		condensate = &cFlow
	}
	bfQuantity := quantity.BypassFactorOf(bf)

	c.outlet.Set(outFlow)
	c.state = connector.LastRunValid
	return ProcessResult{
		ProcessType:    TypeCooling,
		ProcessMode:    c.mode,
		InletFlow:      in,
		OutletFlow:     outFlow,
		HeatOfProcess:  quantity.PowerOfWatt(qWatt),
		CondensateFlow: condensate,
		BypassFactor:   &bfQuantity,
		Clamped:        clamped,
	}, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
