package fluids

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func TestDryAirOfBaseline(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	t20 := quantity.TemperatureOfCelsius(20)

	air, err := DryAirOf(p, t20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "rho", 1e-3, air.Density().GetInKilogramPerCubicMeter(), 1.2041)
}

func TestDryAirOfRejectsTemperatureOutOfBounds(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	if _, err := DryAirOf(p, quantity.TemperatureOfCelsius(2000)); err == nil {
		t.Fatal("expected error for out-of-bounds temperature")
	}
}

func TestDryAirWithTemperaturePreservesPressure(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	base, err := DryAirOf(p, quantity.TemperatureOfCelsius(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hotter, err := base.WithTemperature(quantity.TemperatureOfCelsius(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hotter.Pressure().IsEqualWithPrecision(base.Pressure(), 1e-9) {
		t.Fatal("WithTemperature must preserve pressure")
	}
}
