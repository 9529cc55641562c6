package equations

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLiquidWaterDensityPeakNear4C(t *testing.T) {
	rho4, err := LiquidWaterDensity(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rho0, err := LiquidWaterDensity(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rho50, err := LiquidWaterDensity(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rho4 <= rho0 || rho4 <= rho50 {
		t.Fatalf("expected density to peak near 4degC: rho0=%g rho4=%g rho50=%g", rho0, rho4, rho50)
	}
}

func TestLiquidWaterDensityRejectsOutOfRange(t *testing.T) {
	if _, err := LiquidWaterDensity(250); err == nil {
		t.Fatalf("expected an error for 250 degC")
	}
	if _, err := LiquidWaterDensity(-1); err == nil {
		t.Fatalf("expected an error for -1 degC")
	}
}

func TestLiquidWaterSpecificEnthalpyAtZero(t *testing.T) {
	i, err := LiquidWaterSpecificEnthalpy(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(t, "i(0)", 1e-9, i, 0)
}
