package equations

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestWaterVapourSpecificEnthalpyAtZero(t *testing.T) {
	i := WaterVapourSpecificEnthalpy(0)
	chk.Scalar(t, "i(0)", 1e-9, i, LatentHeatOfVaporization0C)
}

func TestWaterVapourDensityFromRelativeHumidity(t *testing.T) {
	ps, err := HumidAirSaturationPressure(20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rho, err := WaterVapourDensityFromRelativeHumidity(20, 50, ps, 101325)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rho <= 0 {
		t.Fatalf("expected a positive density, got %g", rho)
	}
}

func TestWaterVapourDensityRejectsPartialPressureAboveAtmospheric(t *testing.T) {
	if _, err := WaterVapourDensityFromRelativeHumidity(99, 100, 150000, 101325); err == nil {
		t.Fatalf("expected an error when the partial pressure would exceed atmospheric pressure")
	}
}
