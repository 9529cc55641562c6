package fluids

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

func TestHumidAirOfBaselineScenario(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)
	rh := quantity.RelativeHumidityOfPercent(50)

	air, err := HumidAirOfRelativeHumidity(p, tdb, rh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "x", 1e-4, air.HumidityRatio().GetInKilogramPerKilogram(), 0.007261881)
	chk.Scalar(t, "rho", 1e-2, air.Density().GetInKilogramPerCubicMeter(), 1.1992)
	if air.VapourState() != Unsaturated {
		t.Fatalf("expected Unsaturated, got %s", air.VapourState())
	}
}

func TestHumidAirOfRejectsLowPressure(t *testing.T) {
	p := quantity.PressureOfPascal(10000)
	tdb := quantity.TemperatureOfCelsius(20)
	x := quantity.HumidityRatioOfKilogramPerKilogram(0.007)

	if _, err := HumidAirOf(p, tdb, x); err == nil {
		t.Fatal("expected error for sub-atmospheric pressure floor")
	}
}

func TestHumidAirOfRejectsNegativeHumidityRatio(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)
	x := quantity.HumidityRatioOfKilogramPerKilogram(-0.001)

	if _, err := HumidAirOf(p, tdb, x); err == nil {
		t.Fatal("expected error for negative humidity ratio")
	}
}

func TestHumidAirClassifiesSaturatedAtCeiling(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)

	saturated, err := HumidAirOfRelativeHumidity(p, tdb, quantity.RelativeHumidityOfPercent(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saturated.VapourState() != Saturated {
		t.Fatalf("expected Saturated at RH=100%%, got %s", saturated.VapourState())
	}
}

func TestHumidAirClassifiesWaterFogAboveCeiling(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)

	saturated, err := HumidAirOfRelativeHumidity(p, tdb, quantity.RelativeHumidityOfPercent(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	xMax := saturated.MaxHumidityRatio().GetInKilogramPerKilogram()

	fogged, err := HumidAirOf(p, tdb, quantity.HumidityRatioOfKilogramPerKilogram(xMax+0.002))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fogged.VapourState() != WaterFog {
		t.Fatalf("expected WaterFog above the saturation ceiling, got %s", fogged.VapourState())
	}
}

func TestHumidAirWithHumidityRatioPreservesPressureAndTemperature(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(20)
	base, err := HumidAirOf(p, tdb, quantity.HumidityRatioOfKilogramPerKilogram(0.007))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wetter, err := base.WithHumidityRatio(quantity.HumidityRatioOfKilogramPerKilogram(0.012))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wetter.Pressure().IsEqualWithPrecision(base.Pressure(), 1e-9) {
		t.Fatal("WithHumidityRatio must preserve pressure")
	}
	if !wetter.Temperature().IsEqualWithPrecision(base.Temperature(), 1e-9) {
		t.Fatal("WithHumidityRatio must preserve temperature")
	}
}

func TestHumidAirDewPointBelowWetBulbBelowDryBulb(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	tdb := quantity.TemperatureOfCelsius(30)
	air, err := HumidAirOfRelativeHumidity(p, tdb, quantity.RelativeHumidityOfPercent(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !air.DewPointTemperature().LessThan(air.Temperature()) {
		t.Fatal("dew point must be below dry-bulb temperature for an unsaturated state")
	}
	if !air.WetBulbTemperature().LessThan(air.Temperature()) {
		t.Fatal("wet-bulb temperature must be below dry-bulb temperature for an unsaturated state")
	}
	if !air.DewPointTemperature().LessThan(air.WetBulbTemperature()) {
		t.Fatal("dew point must be below wet-bulb temperature for an unsaturated state")
	}
}

func TestHumidAirIsEqualWithPrecisionForIdenticalInputs(t *testing.T) {
	p := quantity.PressureOfPascal(101325)
	a, err := HumidAirOf(p, quantity.TemperatureOfCelsius(20), quantity.HumidityRatioOfKilogramPerKilogram(0.007))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := HumidAirOf(p, quantity.TemperatureOfCelsius(20), quantity.HumidityRatioOfKilogramPerKilogram(0.007))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.IsEqualWithPrecision(b, 1e-9) {
		t.Fatal("two HumidAir snapshots built from the same inputs must compare equal")
	}
}
