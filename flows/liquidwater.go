package flows

import (
	"fmt"

	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// FlowOfLiquidWater couples a LiquidWater snapshot with a mass flow and its
// derived volumetric flow; used for condensate accounting (spec.md §4.5.3).
type FlowOfLiquidWater struct {
	water          fluids.LiquidWater
	massFlow       quantity.MassFlow
	volumetricFlow quantity.VolumetricFlow
}

// FlowOfLiquidWaterOf constructs a validated FlowOfLiquidWater.
func FlowOfLiquidWaterOf(water fluids.LiquidWater, g quantity.MassFlow) (FlowOfLiquidWater, error) {
	if g.GetInKilogramPerSecond() < 0 {
		return FlowOfLiquidWater{}, xerrors.OutOfBounds("liquid water mass flow", g.GetInKilogramPerSecond(), 0, 1e12)
	}
	v, err := equations.FlowVolumetricFlowFromMassFlow(g.GetInKilogramPerSecond(), water.Density().GetInKilogramPerCubicMeter())
	if err != nil {
		return FlowOfLiquidWater{}, err
	}
	return FlowOfLiquidWater{water: water, massFlow: g, volumetricFlow: quantity.VolumetricFlowOfCubicMeterPerSecond(v)}, nil
}

func (f FlowOfLiquidWater) LiquidWater() fluids.LiquidWater        { return f.water }
func (f FlowOfLiquidWater) MassFlow() quantity.MassFlow            { return f.massFlow }
func (f FlowOfLiquidWater) VolumetricFlow() quantity.VolumetricFlow { return f.volumetricFlow }

// WithMassFlow returns a new FlowOfLiquidWater at the given mass flow,
// keeping the same fluid state.
func (f FlowOfLiquidWater) WithMassFlow(g quantity.MassFlow) (FlowOfLiquidWater, error) {
	return FlowOfLiquidWaterOf(f.water, g)
}

func (f FlowOfLiquidWater) ToConsoleOutput() string {
	return fmt.Sprintf("FlowOfLiquidWater{%s, G=%s, V=%s}", f.water.ToConsoleOutput(), f.massFlow, f.volumetricFlow)
}
