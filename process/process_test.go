package process

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func flowOf(t *testing.T, pPa, tC, rhPercent, volM3PerHour float64) flows.FlowOfHumidAir {
	t.Helper()
	air, err := fluids.HumidAirOfRelativeHumidity(
		quantity.PressureOfPascal(pPa),
		quantity.TemperatureOfCelsius(tC),
		quantity.RelativeHumidityOfPercent(rhPercent),
	)
	if err != nil {
		t.Fatalf("unexpected error building inlet air: %v", err)
	}
	vDot := volM3PerHour / 3600
	gMa := vDot * air.Density().GetInKilogramPerCubicMeter()
	flow, err := flows.FlowOfHumidAirOf(air, quantity.MassFlowOfKilogramPerSecond(gMa))
	if err != nil {
		t.Fatalf("unexpected error building inlet flow: %v", err)
	}
	return flow
}

func TestHeatingFromTemperatureBaselineScenario(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	source.Set(flowOf(t, 101325, -20, 95, 5000))

	h := HeatingOfTemperature(quantity.TemperatureOfCelsius(18))
	h.ConnectAirFlowSource(&source)

	result, err := h.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "Q", 2000, result.HeatOfProcess.GetInWatt(), 57000)
	chk.Scalar(t, "x_out", 1e-6, result.OutletFlow.HumidAir().HumidityRatio().GetInKilogramPerKilogram(),
		result.InletFlow.HumidAir().HumidityRatio().GetInKilogramPerKilogram())
	if result.OutletFlow.HumidAir().RelativeHumidity().GetInPercent() >= 95 {
		t.Fatal("expected outlet RH far below inlet RH after heating")
	}
}

func TestCoolingFromTemperatureWithCondensationScenario(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	source.Set(flowOf(t, 101325, 32, 50, 5000))

	c := CoolingOfTemperature(quantity.TemperatureOfCelsius(9), quantity.TemperatureOfCelsius(24))
	c.ConnectAirFlowSource(&source)

	result, err := c.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HeatOfProcess.IsNegative() {
		t.Fatal("expected negative heat of process for cooling")
	}
	if result.CondensateFlow == nil || result.CondensateFlow.MassFlow().GetInKilogramPerSecond() <= 0 {
		t.Fatal("expected positive condensate mass flow")
	}
	if result.OutletFlow.HumidAir().RelativeHumidity().GetInPercent() <= 50 {
		t.Fatal("expected outlet RH above inlet RH after cooling with condensation")
	}
	bf := result.BypassFactor.GetValue()
	if bf <= 0 || bf >= 1 {
		t.Fatalf("expected bypass factor in (0,1), got %g", bf)
	}
	if result.Clamped {
		t.Fatal("expected no clamping for a bypass factor within (0,1)")
	}
}

func TestMixingTwoStreamsScenario(t *testing.T) {
	var sourceA, sourceB connector.Output[flows.FlowOfHumidAir]
	sourceA.Set(flowOf(t, 101325, -20, 100, 5000))
	sourceB.Set(flowOf(t, 101325, 15, 30, 5000))

	m := MixingOfSimple()
	m.ConnectAirFlowSource(&sourceA)
	m.ConnectRecirculationSource(0, &sourceB)

	result, err := m.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantGda := result.InletFlow.DryAirMassFlow().GetInKilogramPerSecond() + result.RecirculationFlows[0].DryAirMassFlow().GetInKilogramPerSecond()
	chk.Scalar(t, "Gda_out", 1e-6, result.OutletFlow.DryAirMassFlow().GetInKilogramPerSecond(), wantGda)
	if result.HeatOfProcess.GetInWatt() != 0 {
		t.Fatalf("expected zero heat of process for mixing, got %g", result.HeatOfProcess.GetInWatt())
	}
}

func TestMixingCommutativity(t *testing.T) {
	run := func(aFirst bool) flows.FlowOfHumidAir {
		var sourceA, sourceB connector.Output[flows.FlowOfHumidAir]
		sourceA.Set(flowOf(t, 101325, -20, 100, 5000))
		sourceB.Set(flowOf(t, 101325, 15, 30, 5000))

		m := MixingOfSimple()
		if aFirst {
			m.ConnectAirFlowSource(&sourceA)
			m.ConnectRecirculationSource(0, &sourceB)
		} else {
			m.ConnectAirFlowSource(&sourceB)
			m.ConnectRecirculationSource(0, &sourceA)
		}
		result, err := m.Run()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return result.OutletFlow
	}

	ab := run(true)
	ba := run(false)
	if !ab.HumidAir().IsEqualWithPrecision(ba.HumidAir(), 1e-9) {
		t.Fatal("expected mix(A,B) == mix(B,A)")
	}
}

func TestDryCoolingInvalidBoundsReturnsInletUnchanged(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	inlet := flowOf(t, 101325, 25, 60, 3000)
	source.Set(inlet)

	dc := DryCoolingOfTemperature(quantity.TemperatureOfCelsius(5))
	dc.ConnectAirFlowSource(&source)

	result, err := dc.Run()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !result.OutletFlow.HumidAir().IsEqualWithPrecision(inlet.HumidAir(), 1e-9) {
		t.Fatal("expected outlet to equal inlet when target is below dew point")
	}
	if result.HeatOfProcess.GetInWatt() != 0 {
		t.Fatalf("expected zero heat of process, got %g", result.HeatOfProcess.GetInWatt())
	}
}

func TestHeatingValidateRejectsTargetBelowInlet(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	source.Set(flowOf(t, 101325, 20, 50, 1000))

	h := HeatingOfTemperature(quantity.TemperatureOfCelsius(10))
	h.ConnectAirFlowSource(&source)

	if err := h.Validate(); err == nil {
		t.Fatal("expected validation error for target temperature below inlet")
	}
}

func TestCoolingValidateRejectsPositivePower(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	source.Set(flowOf(t, 101325, 30, 50, 1000))

	c := CoolingOfPower(quantity.TemperatureOfCelsius(10), quantity.PowerOfWatt(5000))
	c.ConnectAirFlowSource(&source)

	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for positive cooling power")
	}
}

func TestHumidificationAddsHumidityRatio(t *testing.T) {
	var source connector.Output[flows.FlowOfHumidAir]
	source.Set(flowOf(t, 101325, 15, 30, 2000))

	hmd := HumidificationOfSteam(quantity.MassFlowOfKilogramPerSecond(0.001), quantity.TemperatureOfCelsius(100))
	hmd.ConnectAirFlowSource(&source)

	result, err := hmd.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OutletFlow.HumidAir().HumidityRatio().GreaterThan(result.InletFlow.HumidAir().HumidityRatio()) {
		t.Fatal("expected humidification to increase the humidity ratio")
	}
}
