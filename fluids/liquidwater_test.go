package fluids

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func TestLiquidWaterOfBaseline(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	w, err := LiquidWaterOf(p, quantity.TemperatureOfCelsius(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "rho", 1e-1, w.Density().GetInKilogramPerCubicMeter(), 999.7)
}

func TestLiquidWaterOfRejectsNonPositivePressure(t *testing.T) {
	if _, err := LiquidWaterOf(quantity.PressureOfPascal(0), quantity.TemperatureOfCelsius(10)); err == nil {
		t.Fatal("expected error for non-positive pressure")
	}
}

func TestLiquidWaterOfRejectsTemperatureOutOfBounds(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	if _, err := LiquidWaterOf(p, quantity.TemperatureOfCelsius(250)); err == nil {
		t.Fatal("expected error for out-of-bounds temperature")
	}
}
