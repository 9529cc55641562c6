package equations

import "github.com/pjazdzyk/hvac-engine-sub005/xerrors"

// FlowDryAirMassFlowFromHumidAirMassFlow converts a humid-air-basis mass
// flow to its dry-air basis: G_da = G_ma/(1+x).
func FlowDryAirMassFlowFromHumidAirMassFlow(gMa, x float64) (float64, error) {
	denom := 1 + x
	if denom <= 0 {
		return 0, xerrors.NumericalError("dry-air mass flow: 1+x = %g is not positive", denom)
	}
	return gMa / denom, nil
}

// FlowHumidAirMassFlowFromDryAirMassFlow converts a dry-air-basis mass flow
// to its humid-air basis: G_ma = G_da*(1+x).
func FlowHumidAirMassFlowFromDryAirMassFlow(gDa, x float64) float64 {
	return gDa * (1 + x)
}

// FlowVolumetricFlowFromMassFlow converts a mass flow to a volumetric flow
// given the fluid density: V = G/rho.
func FlowVolumetricFlowFromMassFlow(g, rho float64) (float64, error) {
	if rho <= 0 {
		return 0, xerrors.NumericalError("volumetric flow: density %g is not positive", rho)
	}
	return g / rho, nil
}

// FlowMassFlowFromVolumetricFlow converts a volumetric flow to a mass flow
// given the fluid density: G = V*rho.
func FlowMassFlowFromVolumetricFlow(v, rho float64) float64 {
	return v * rho
}
