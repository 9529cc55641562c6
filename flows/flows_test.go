package flows

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func baselineHumidAir(t *testing.T) fluids.HumidAir {
	t.Helper()
	air, err := fluids.HumidAirOfRelativeHumidity(
		quantity.PressureOfPascal(101325),
		quantity.TemperatureOfCelsius(20),
		quantity.RelativeHumidityOfPercent(50),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return air
}

func TestFlowOfHumidAirOfDerivesDryAirBasis(t *testing.T) {
	air := baselineHumidAir(t)
	flow, err := FlowOfHumidAirOf(air, quantity.MassFlowOfKilogramPerSecond(1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x := air.HumidityRatio().GetInKilogramPerKilogram()
	chk.Scalar(t, "Gda", 1e-6, flow.DryAirMassFlow().GetInKilogramPerSecond(), 1.0/(1+x))
}

func TestFlowOfHumidAirOfDryAirMassFlowRoundTrips(t *testing.T) {
	air := baselineHumidAir(t)
	byDryAir, err := FlowOfHumidAirOfDryAirMassFlow(air, quantity.MassFlowOfKilogramPerSecond(0.9928))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byHumidAir, err := FlowOfHumidAirOf(air, byDryAir.MassFlow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "Gda round trip", 1e-4, byHumidAir.DryAirMassFlow().GetInKilogramPerSecond(), byDryAir.DryAirMassFlow().GetInKilogramPerSecond())
}

func TestFlowOfHumidAirOfRejectsNegativeMassFlow(t *testing.T) {
	air := baselineHumidAir(t)
	if _, err := FlowOfHumidAirOf(air, quantity.MassFlowOfKilogramPerSecond(-1)); err == nil {
		t.Fatal("expected error for negative mass flow")
	}
}

func TestFlowOfHumidAirOfRejectsZeroMassFlow(t *testing.T) {
	air := baselineHumidAir(t)
	if _, err := FlowOfHumidAirOf(air, quantity.MassFlowOfKilogramPerSecond(0)); err == nil {
		t.Fatal("expected error for zero mass flow")
	}
}

func TestFlowOfHumidAirOfRejectsMassFlowAboveUpperBound(t *testing.T) {
	air := baselineHumidAir(t)
	if _, err := FlowOfHumidAirOf(air, quantity.MassFlowOfKilogramPerSecond(6e9)); err == nil {
		t.Fatal("expected error for mass flow above upper bound")
	}
}

func TestFlowOfDryAirAcceptsZeroMassFlow(t *testing.T) {
	dryAir, err := fluids.DryAirOf(quantity.PressureOfPascal(101325), quantity.TemperatureOfCelsius(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := FlowOfDryAirOf(dryAir, quantity.MassFlowOfKilogramPerSecond(0)); err != nil {
		t.Fatalf("expected zero mass flow to be accepted, got: %v", err)
	}
}

func TestFlowOfDryAirOfRejectsMassFlowAboveUpperBound(t *testing.T) {
	dryAir, err := fluids.DryAirOf(quantity.PressureOfPascal(101325), quantity.TemperatureOfCelsius(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := FlowOfDryAirOf(dryAir, quantity.MassFlowOfKilogramPerSecond(6e9)); err == nil {
		t.Fatal("expected error for mass flow above upper bound")
	}
}

func TestFlowOfDryAirDerivesVolumetricFlow(t *testing.T) {
	dryAir, err := fluids.DryAirOf(quantity.PressureOfPascal(101325), quantity.TemperatureOfCelsius(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flow, err := FlowOfDryAirOf(dryAir, quantity.MassFlowOfKilogramPerSecond(1.2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flow.VolumetricFlow().GetInCubicMeterPerSecond() <= 0 {
		t.Fatal("expected positive volumetric flow")
	}
}

func TestFlowOfLiquidWaterDerivesVolumetricFlow(t *testing.T) {
	water, err := fluids.LiquidWaterOf(quantity.PressureOfPascal(101325), quantity.TemperatureOfCelsius(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flow, err := FlowOfLiquidWaterOf(water, quantity.MassFlowOfKilogramPerSecond(0.05))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flow.VolumetricFlow().GetInCubicMeterPerSecond() <= 0 {
		t.Fatal("expected positive volumetric flow")
	}
}
