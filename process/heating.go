package process

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// Heating implements the three heating modes of spec.md §4.5.1: identical
// energy balance Q = G_da*(i_out - i_in), x_out = x_in.
type Heating struct {
	inlet  connector.Input[flows.FlowOfHumidAir]
	outlet connector.Output[flows.FlowOfHumidAir]
	state  connector.State

	mode                   ProcessMode
	targetPower            quantity.Power
	targetTemperature      quantity.Temperature
	targetRelativeHumidity quantity.RelativeHumidity
}

// HeatingOfPower configures a Heating block in FROM_POWER mode.
func HeatingOfPower(power quantity.Power) *Heating {
	return &Heating{mode: ModeFromPower, targetPower: power}
}

// HeatingOfTemperature configures a Heating block in FROM_TEMPERATURE mode.
func HeatingOfTemperature(t quantity.Temperature) *Heating {
	return &Heating{mode: ModeFromTemperature, targetTemperature: t}
}

// HeatingOfRelativeHumidity configures a Heating block in FROM_HUMIDITY mode.
func HeatingOfRelativeHumidity(rh quantity.RelativeHumidity) *Heating {
	return &Heating{mode: ModeFromHumidity, targetRelativeHumidity: rh}
}

func (h *Heating) InputConnector() *connector.Input[flows.FlowOfHumidAir]   { return &h.inlet }
func (h *Heating) OutputConnector() *connector.Output[flows.FlowOfHumidAir] { return &h.outlet }
func (h *Heating) ProcessType() ProcessType                                 { return TypeHeating }
func (h *Heating) ProcessMode() ProcessMode                                 { return h.mode }

func (h *Heating) ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir]) {
	h.inlet.ConnectAndConsumeDataFrom(source)
	h.state = connector.Ready
}

// ResetProcess returns the block to Ready with its outlet cleared.
func (h *Heating) ResetProcess() {
	h.outlet = connector.Output[flows.FlowOfHumidAir]{}
	h.state = connector.Ready
}

// Describe renders this block's configuration for introspection.
func (h *Heating) Describe() dbf.Params {
	switch h.mode {
	case ModeFromPower:
		return describeParams(map[string]float64{"Q": h.targetPower.GetInWatt()})
	case ModeFromTemperature:
		return describeParams(map[string]float64{"t_out": h.targetTemperature.GetInCelsius()})
	default:
		return describeParams(map[string]float64{"RH_out": h.targetRelativeHumidity.GetInPercent()})
	}
}

// Validate runs the FROM_POWER/FROM_TEMPERATURE/FROM_HUMIDITY pre-checks
// against the currently connected inlet, without executing Run().
func (h *Heating) Validate() error {
	in, err := h.inlet.Get()
	if err != nil {
		return wrapBlockError(TypeHeating, h.mode, err)
	}
	air := in.HumidAir()
	switch h.mode {
	case ModeFromPower:
		if h.targetPower.GetInWatt() < 0 {
			return wrapBlockError(TypeHeating, h.mode, xerrors.IncompatibleState("heating power must be >= 0, got %g W", h.targetPower.GetInWatt()))
		}
	case ModeFromTemperature:
		if h.targetTemperature.LessThan(air.Temperature()) {
			return wrapBlockError(TypeHeating, h.mode, xerrors.IncompatibleState("target temperature %s must be >= inlet temperature %s", h.targetTemperature, air.Temperature()))
		}
	case ModeFromHumidity:
		if h.targetRelativeHumidity.GetInPercent() > air.RelativeHumidity().GetInPercent() {
			return wrapBlockError(TypeHeating, h.mode, xerrors.IncompatibleState("target RH %s must be <= inlet RH %s (heating reduces RH)", h.targetRelativeHumidity, air.RelativeHumidity()))
		}
	}
	return nil
}

// Run executes the heating balance and publishes the outlet flow.
func (h *Heating) Run() (ProcessResult, error) {
	if err := h.Validate(); err != nil {
		return ProcessResult{}, err
	}
	in, err := h.inlet.Get()
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHeating, h.mode, err)
	}

	air := in.HumidAir()
	p := air.Pressure()
	tInC := air.Temperature().GetInCelsius()
	xIn := air.HumidityRatio().GetInKilogramPerKilogram()
	iIn := air.SpecificEnthalpy().GetInKiloJoulePerKilogram()
	gda := in.DryAirMassFlow().GetInKilogramPerSecond()

	var tOutC, qWatt float64

	switch h.mode {
	case ModeFromPower:
		qWatt = h.targetPower.GetInWatt()
		if qWatt == 0 {
			return h.publish(in, in, quantity.PowerOfWatt(0))
		}
		iOut := iIn + (qWatt/gda)/1000
		tOutC, err = dryBulbTemperatureOf(iOut, xIn)
		if err != nil {
			return ProcessResult{}, wrapBlockError(TypeHeating, h.mode, err)
		}
	case ModeFromTemperature:
		tOutC = h.targetTemperature.GetInCelsius()
		iOut := equations.HumidAirSpecificEnthalpy(tOutC, xIn)
		qWatt = gda * (iOut - iIn) * 1000
	case ModeFromHumidity:
		patPa := p.GetInPascal()
		f := func(tC float64) float64 {
			rh, rhErr := equations.HumidAirRelativeHumidity(tC, xIn, patPa)
			if rhErr != nil {
				return 0
			}
			return rh - h.targetRelativeHumidity.GetInPercent()
		}
		tOutC, err = newBrentSolver().FindRoot(f, tInC, tInC+200)
		if err != nil {
			return ProcessResult{}, wrapBlockError(TypeHeating, h.mode, err)
		}
		iOut := equations.HumidAirSpecificEnthalpy(tOutC, xIn)
		qWatt = gda * (iOut - iIn) * 1000
	}

	outAir, err := fluids.HumidAirOf(p, quantity.TemperatureOfCelsius(tOutC), air.HumidityRatio())
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHeating, h.mode, err)
	}
	outFlow, err := flows.FlowOfHumidAirOfDryAirMassFlow(outAir, in.DryAirMassFlow())
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHeating, h.mode, err)
	}
	return h.publish(in, outFlow, quantity.PowerOfWatt(qWatt))
}

func (h *Heating) publish(in, out flows.FlowOfHumidAir, q quantity.Power) (ProcessResult, error) {
	h.outlet.Set(out)
	h.state = connector.LastRunValid
	return ProcessResult{
		ProcessType:   TypeHeating,
		ProcessMode:   h.mode,
		InletFlow:     in,
		OutletFlow:    out,
		HeatOfProcess: q,
	}, nil
}
