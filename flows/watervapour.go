package flows

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// FlowOfWaterVapour couples a WaterVapour snapshot with a mass flow and its
// derived volumetric flow; used for humidifier steam injection accounting
// (spec.md §4.5.5).
type FlowOfWaterVapour struct {
	vapour         fluids.WaterVapour
	massFlow       quantity.MassFlow
	volumetricFlow quantity.VolumetricFlow
}

// FlowOfWaterVapourOf constructs a validated FlowOfWaterVapour.
func FlowOfWaterVapourOf(vapour fluids.WaterVapour, g quantity.MassFlow) (FlowOfWaterVapour, error) {
	if g.GetInKilogramPerSecond() < 0 {
		return FlowOfWaterVapour{}, xerrors.OutOfBounds("water vapour mass flow", g.GetInKilogramPerSecond(), 0, 1e12)
	}
	v, err := equations.FlowVolumetricFlowFromMassFlow(g.GetInKilogramPerSecond(), vapour.Density().GetInKilogramPerCubicMeter())
	if err != nil {
		return FlowOfWaterVapour{}, err
	}
	return FlowOfWaterVapour{vapour: vapour, massFlow: g, volumetricFlow: quantity.VolumetricFlowOfCubicMeterPerSecond(v)}, nil
}

func (f FlowOfWaterVapour) WaterVapour() fluids.WaterVapour        { return f.vapour }
func (f FlowOfWaterVapour) MassFlow() quantity.MassFlow            { return f.massFlow }
func (f FlowOfWaterVapour) VolumetricFlow() quantity.VolumetricFlow { return f.volumetricFlow }

// WithMassFlow returns a new FlowOfWaterVapour at the given mass flow,
// keeping the same fluid state.
func (f FlowOfWaterVapour) WithMassFlow(g quantity.MassFlow) (FlowOfWaterVapour, error) {
	return FlowOfWaterVapourOf(f.vapour, g)
}

func (f FlowOfWaterVapour) ToConsoleOutput() string {
	return fmt.Sprintf("FlowOfWaterVapour{%s, G=%s, V=%s}", f.vapour.ToConsoleOutput(), f.massFlow, f.volumetricFlow)
}
