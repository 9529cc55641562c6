package process

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

// DryCooling implements the two sensible-only cooling modes of spec.md
// §4.5.2: no condensation, x_out = x_in.
type DryCooling struct {
	inlet  connector.Input[flows.FlowOfHumidAir]
	outlet connector.Output[flows.FlowOfHumidAir]
	state  connector.State

	mode              ProcessMode
	targetPower       quantity.Power
	targetTemperature quantity.Temperature
}

// DryCoolingOfPower configures a DryCooling block in FROM_POWER mode.
func DryCoolingOfPower(power quantity.Power) *DryCooling {
	return &DryCooling{mode: ModeFromPower, targetPower: power}
}

// DryCoolingOfTemperature configures a DryCooling block in FROM_TEMPERATURE mode.
func DryCoolingOfTemperature(t quantity.Temperature) *DryCooling {
	return &DryCooling{mode: ModeFromTemperature, targetTemperature: t}
}

func (c *DryCooling) InputConnector() *connector.Input[flows.FlowOfHumidAir]   { return &c.inlet }
func (c *DryCooling) OutputConnector() *connector.Output[flows.FlowOfHumidAir] { return &c.outlet }
func (c *DryCooling) ProcessType() ProcessType                                 { return TypeDryCooling }
func (c *DryCooling) ProcessMode() ProcessMode                                  { return c.mode }

func (c *DryCooling) ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir]) {
	c.inlet.ConnectAndConsumeDataFrom(source)
	c.state = connector.Ready
}

func (c *DryCooling) ResetProcess() {
	c.outlet = connector.Output[flows.FlowOfHumidAir]{}
	c.state = connector.Ready
}

func (c *DryCooling) Describe() dbf.Params {
	if c.mode == ModeFromPower {
		return describeParams(map[string]float64{"Q": c.targetPower.GetInWatt()})
	}
	return describeParams(map[string]float64{"t_out": c.targetTemperature.GetInCelsius()})
}

// Validate has nothing to pre-check beyond connectivity: both modes'
// "return inlet unchanged" cases are legitimate outcomes, not errors
// (spec.md §4.5.2).
func (c *DryCooling) Validate() error {
	if _, err := c.inlet.Get(); err != nil {
		return wrapBlockError(TypeDryCooling, c.mode, err)
	}
	return nil
}

// Run executes the dry-cooling balance and publishes the outlet flow.
func (c *DryCooling) Run() (ProcessResult, error) {
	in, err := c.inlet.Get()
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeDryCooling, c.mode, err)
	}

	air := in.HumidAir()
	p := air.Pressure()
	tInC := air.Temperature().GetInCelsius()
	xIn := air.HumidityRatio().GetInKilogramPerKilogram()
	iIn := air.SpecificEnthalpy().GetInKiloJoulePerKilogram()
	gda := in.DryAirMassFlow().GetInKilogramPerSecond()

	if c.mode == ModeFromPower {
		qWatt := c.targetPower.GetInWatt()
		if qWatt >= 0 {
			return c.publish(in, in, quantity.PowerOfWatt(0))
		}
		iOut := iIn + (qWatt/gda)/1000
		tOutC, rootErr := dryBulbTemperatureOf(iOut, xIn)
		if rootErr != nil {
			return ProcessResult{}, wrapBlockError(TypeDryCooling, c.mode, rootErr)
		}
		return c.build(in, p, tOutC, xIn, quantity.PowerOfWatt(qWatt))
	}

	tOutC := c.targetTemperature.GetInCelsius()
	tdp := air.DewPointTemperature().GetInCelsius()
	if tOutC >= tInC || tOutC < tdp {
		return c.publish(in, in, quantity.PowerOfWatt(0))
	}
	iOut := equations.HumidAirSpecificEnthalpy(tOutC, xIn)
	qWatt := gda * (iOut - iIn) * 1000
	return c.build(in, p, tOutC, xIn, quantity.PowerOfWatt(qWatt))
}

func (c *DryCooling) build(in flows.FlowOfHumidAir, p quantity.Pressure, tOutC, xIn float64, q quantity.Power) (ProcessResult, error) {
	outAir, err := fluids.HumidAirOf(p, quantity.TemperatureOfCelsius(tOutC), quantity.HumidityRatioOfKilogramPerKilogram(xIn))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeDryCooling, c.mode, err)
	}
	outFlow, err := flows.FlowOfHumidAirOfDryAirMassFlow(outAir, in.DryAirMassFlow())
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeDryCooling, c.mode, err)
	}
	return c.publish(in, outFlow, q)
}

func (c *DryCooling) publish(in, out flows.FlowOfHumidAir, q quantity.Power) (ProcessResult, error) {
	c.outlet.Set(out)
	c.state = connector.LastRunValid
	return ProcessResult{
		ProcessType:   TypeDryCooling,
		ProcessMode:   c.mode,
		InletFlow:     in,
		OutletFlow:    out,
		HeatOfProcess: q,
	}, nil
}
