package fluids

import (
	"testing"

	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func TestWaterVapourOfBaseline(t *testing.T) {
	p := quantity.PressureOfPascal(1500)
	tdb := quantity.TemperatureOfCelsius(20)

	v, err := WaterVapourOf(p, tdb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Density().GetInKilogramPerCubicMeter() <= 0 {
		t.Fatal("expected positive density")
	}
}

func TestWaterVapourOfRelativeHumidityDerivesPartialPressure(t *testing.T) {
	atm := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)

	v, err := WaterVapourOfRelativeHumidity(atm, tdb, quantity.RelativeHumidityOfPercent(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Pressure().GreaterThan(atm) {
		t.Fatal("partial pressure must not exceed atmospheric pressure")
	}
}

func TestWaterVapourOfRejectsTemperatureOutOfBounds(t *testing.T) {
	p := quantity.PressureOfPascal(1500)
	if _, err := WaterVapourOf(p, quantity.TemperatureOfCelsius(-500)); err == nil {
		t.Fatal("expected error for out-of-bounds temperature")
	}
}
