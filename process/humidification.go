package process

import (
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// Humidification implements the steam-injection balance of spec.md §4.5.5.
type Humidification struct {
	inlet  connector.Input[flows.FlowOfHumidAir]
	outlet connector.Output[flows.FlowOfHumidAir]
	state  connector.State

	steamMassFlow   quantity.MassFlow
	steamTemperature quantity.Temperature
}

// HumidificationOfSteam configures a Humidification block with the injected
// steam's mass flow and temperature.
func HumidificationOfSteam(massFlow quantity.MassFlow, steamTemperature quantity.Temperature) *Humidification {
	return &Humidification{steamMassFlow: massFlow, steamTemperature: steamTemperature}
}

func (h *Humidification) InputConnector() *connector.Input[flows.FlowOfHumidAir]   { return &h.inlet }
func (h *Humidification) OutputConnector() *connector.Output[flows.FlowOfHumidAir] { return &h.outlet }
func (h *Humidification) ProcessType() ProcessType                                  { return TypeHumidification }
func (h *Humidification) ProcessMode() ProcessMode                                  { return "" }

func (h *Humidification) ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir]) {
	h.inlet.ConnectAndConsumeDataFrom(source)
	h.state = connector.Ready
}

func (h *Humidification) ResetProcess() {
	h.outlet = connector.Output[flows.FlowOfHumidAir]{}
	h.state = connector.Ready
}

func (h *Humidification) Validate() error {
	if _, err := h.inlet.Get(); err != nil {
		return wrapBlockError(TypeHumidification, h.ProcessMode(), err)
	}
	if h.steamMassFlow.GetInKilogramPerSecond() < 0 {
		return wrapBlockError(TypeHumidification, h.ProcessMode(), xerrors.OutOfBounds("steam mass flow", h.steamMassFlow.GetInKilogramPerSecond(), 0, 1e12))
	}
	return nil
}

// Run executes the steam-injection balance and publishes the outlet flow.
func (h *Humidification) Run() (ProcessResult, error) {
	if err := h.Validate(); err != nil {
		return ProcessResult{}, err
	}
	in, err := h.inlet.Get()
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHumidification, h.ProcessMode(), err)
	}

	air := in.HumidAir()
	p := air.Pressure()
	xIn := air.HumidityRatio().GetInKilogramPerKilogram()
	iIn := air.SpecificEnthalpy().GetInKiloJoulePerKilogram()
	gda := in.DryAirMassFlow().GetInKilogramPerSecond()
	steamRatio := h.steamMassFlow.GetInKilogramPerSecond() / gda

	iSteam := equations.WaterVapourSpecificEnthalpy(h.steamTemperature.GetInCelsius())
	xOut := xIn + steamRatio
	iOut := iIn + steamRatio*iSteam

	tOutC, err := dryBulbTemperatureOf(iOut, xOut)
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHumidification, h.ProcessMode(), err)
	}
	outAir, err := fluids.HumidAirOf(p, quantity.TemperatureOfCelsius(tOutC), quantity.HumidityRatioOfKilogramPerKilogram(xOut))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHumidification, h.ProcessMode(), err)
	}
	outFlow, err := flows.FlowOfHumidAirOfDryAirMassFlow(outAir, in.DryAirMassFlow())
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeHumidification, h.ProcessMode(), err)
	}

	qWatt := gda * (iOut - iIn) * 1000

	h.outlet.Set(outFlow)
	h.state = connector.LastRunValid
	return ProcessResult{
		ProcessType:   TypeHumidification,
		ProcessMode:   h.ProcessMode(),
		InletFlow:     in,
		OutletFlow:    outFlow,
		HeatOfProcess: quantity.PowerOfWatt(qWatt),
	}, nil
}
