// Package flows pairs each fluids.* snapshot with a mass flow rate and
// derives the matching volumetric flow, grounded on gofem's mdl/porous
// style of carrying a material state alongside a flux it drives.
package flows

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/engineering/defaults"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// FlowOfDryAir couples a DryAir snapshot with a mass flow and its derived
// volumetric flow.
type FlowOfDryAir struct {
	air            fluids.DryAir
	massFlow       quantity.MassFlow
	volumetricFlow quantity.VolumetricFlow
}

// FlowOfDryAirOf constructs a validated FlowOfDryAir.
func FlowOfDryAirOf(air fluids.DryAir, g quantity.MassFlow) (FlowOfDryAir, error) {
	gKgPerSecond := g.GetInKilogramPerSecond()
	if gKgPerSecond < 0 || gKgPerSecond > defaults.MaxMassFlowKgPerSecond {
		return FlowOfDryAir{}, xerrors.OutOfBounds("dry air mass flow", gKgPerSecond, 0, defaults.MaxMassFlowKgPerSecond)
	}
	v, err := equations.FlowVolumetricFlowFromMassFlow(g.GetInKilogramPerSecond(), air.Density().GetInKilogramPerCubicMeter())
	if err != nil {
		return FlowOfDryAir{}, err
	}
	return FlowOfDryAir{air: air, massFlow: g, volumetricFlow: quantity.VolumetricFlowOfCubicMeterPerSecond(v)}, nil
}

func (f FlowOfDryAir) DryAir() fluids.DryAir                       { return f.air }
func (f FlowOfDryAir) MassFlow() quantity.MassFlow                 { return f.massFlow }
func (f FlowOfDryAir) VolumetricFlow() quantity.VolumetricFlow     { return f.volumetricFlow }

// WithMassFlow returns a new FlowOfDryAir at the given mass flow, keeping
// the same fluid state.
func (f FlowOfDryAir) WithMassFlow(g quantity.MassFlow) (FlowOfDryAir, error) {
	return FlowOfDryAirOf(f.air, g)
}

// WithDryAir returns a new FlowOfDryAir at the given fluid state, keeping
// the same mass flow.
func (f FlowOfDryAir) WithDryAir(air fluids.DryAir) (FlowOfDryAir, error) {
	return FlowOfDryAirOf(air, f.massFlow)
}

func (f FlowOfDryAir) ToConsoleOutput() string {
	return fmt.Sprintf("FlowOfDryAir{%s, G=%s, V=%s}", f.air.ToConsoleOutput(), f.massFlow, f.volumetricFlow)
}
