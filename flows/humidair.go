package flows

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/engineering/defaults"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// FlowOfHumidAir couples a HumidAir snapshot with a mass flow, carried on
// the humid-air basis, and derives both the humid-air volumetric flow and
// the dry-air basis mass/volumetric flow (spec.md §4.4).
type FlowOfHumidAir struct {
	air                 fluids.HumidAir
	massFlow            quantity.MassFlow
	volumetricFlow      quantity.VolumetricFlow
	dryAirMassFlow      quantity.MassFlow
	dryAirVolumetricFlow quantity.VolumetricFlow
}

// FlowOfHumidAirOf constructs a validated FlowOfHumidAir from a humid-air
// basis mass flow.
func FlowOfHumidAirOf(air fluids.HumidAir, g quantity.MassFlow) (FlowOfHumidAir, error) {
	gKgPerSecond := g.GetInKilogramPerSecond()
	if gKgPerSecond <= 0 || gKgPerSecond > defaults.MaxMassFlowKgPerSecond {
		return FlowOfHumidAir{}, xerrors.OutOfBounds("humid air mass flow", gKgPerSecond, 0, defaults.MaxMassFlowKgPerSecond)
	}
	return buildFlowOfHumidAir(air, g)
}

// FlowOfHumidAirOfDryAirMassFlow constructs a validated FlowOfHumidAir from
// a dry-air basis mass flow, converting it to the humid-air basis.
func FlowOfHumidAirOfDryAirMassFlow(air fluids.HumidAir, gda quantity.MassFlow) (FlowOfHumidAir, error) {
	gdaKgPerSecond := gda.GetInKilogramPerSecond()
	if gdaKgPerSecond <= 0 || gdaKgPerSecond > defaults.MaxMassFlowKgPerSecond {
		return FlowOfHumidAir{}, xerrors.OutOfBounds("dry air mass flow", gdaKgPerSecond, 0, defaults.MaxMassFlowKgPerSecond)
	}
	x := air.HumidityRatio().GetInKilogramPerKilogram()
	gma := equations.FlowHumidAirMassFlowFromDryAirMassFlow(gda.GetInKilogramPerSecond(), x)
	return buildFlowOfHumidAir(air, quantity.MassFlowOfKilogramPerSecond(gma))
}

func buildFlowOfHumidAir(air fluids.HumidAir, g quantity.MassFlow) (FlowOfHumidAir, error) {
	x := air.HumidityRatio().GetInKilogramPerKilogram()
	gda, err := equations.FlowDryAirMassFlowFromHumidAirMassFlow(g.GetInKilogramPerSecond(), x)
	if err != nil {
		return FlowOfHumidAir{}, err
	}
	v, err := equations.FlowVolumetricFlowFromMassFlow(g.GetInKilogramPerSecond(), air.Density().GetInKilogramPerCubicMeter())
	if err != nil {
		return FlowOfHumidAir{}, err
	}
	vda, err := equations.FlowVolumetricFlowFromMassFlow(gda, air.DryAir().Density().GetInKilogramPerCubicMeter())
	if err != nil {
		return FlowOfHumidAir{}, err
	}
	return FlowOfHumidAir{
		air:                  air,
		massFlow:             g,
		volumetricFlow:       quantity.VolumetricFlowOfCubicMeterPerSecond(v),
		dryAirMassFlow:       quantity.MassFlowOfKilogramPerSecond(gda),
		dryAirVolumetricFlow: quantity.VolumetricFlowOfCubicMeterPerSecond(vda),
	}, nil
}

func (f FlowOfHumidAir) HumidAir() fluids.HumidAir                      { return f.air }
func (f FlowOfHumidAir) MassFlow() quantity.MassFlow                    { return f.massFlow }
func (f FlowOfHumidAir) VolumetricFlow() quantity.VolumetricFlow        { return f.volumetricFlow }
func (f FlowOfHumidAir) DryAirMassFlow() quantity.MassFlow              { return f.dryAirMassFlow }
func (f FlowOfHumidAir) DryAirVolumetricFlow() quantity.VolumetricFlow  { return f.dryAirVolumetricFlow }

// WithMassFlow returns a new FlowOfHumidAir at the given humid-air basis
// mass flow, keeping the same fluid state.
func (f FlowOfHumidAir) WithMassFlow(g quantity.MassFlow) (FlowOfHumidAir, error) {
	return FlowOfHumidAirOf(f.air, g)
}

// WithHumidAir returns a new FlowOfHumidAir at the given fluid state,
// keeping the same humid-air basis mass flow.
func (f FlowOfHumidAir) WithHumidAir(air fluids.HumidAir) (FlowOfHumidAir, error) {
	return FlowOfHumidAirOf(air, f.massFlow)
}

func (f FlowOfHumidAir) ToConsoleOutput() string {
	return fmt.Sprintf("FlowOfHumidAir{%s, G=%s, Gda=%s, V=%s}", f.air.ToConsoleOutput(), f.massFlow, f.dryAirMassFlow, f.volumetricFlow)
}
