package equations

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestDryAirDensityStandardConditions(t *testing.T) {
	rho, err := DryAirDensity(20, 101325)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "rho", 1e-3, rho, 1.2041)
}

func TestDryAirDensityRejectsNonPositiveAbsoluteTemperature(t *testing.T) {
	if _, err := DryAirDensity(-400, 101325); err == nil {
		t.Fatalf("expected an error for an impossible absolute temperature")
	}
}

func TestDryAirViscosityIncreasesWithTemperature(t *testing.T) {
	muCold := DryAirDynamicViscosity(-20)
	muHot := DryAirDynamicViscosity(80)
	if muHot <= muCold {
		t.Fatalf("expected viscosity to increase with temperature: %g vs %g", muCold, muHot)
	}
}
