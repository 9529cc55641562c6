// Package process implements the engine's pipeline blocks: Heating,
// DryCooling, Cooling, Mixing and Humidification. Each block shares the
// small "process contract" capability below rather than an inheritance
// hierarchy (spec.md §9's redesign note), grounded on gofem's
// factory/allocator idiom for discoverable element construction by type key
// (ele/factories.go) generalised to a fixed set of psychrometric blocks.
package process

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/equations"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
	"github.com/pjazdzyk/hvac-engine-sub005/solver"
	"github.com/pjazdzyk/hvac-engine-sub005/xerrors"
)

// ProcessType names one of the five concrete block kinds.
type ProcessType int

const (
	TypeHeating ProcessType = iota
	TypeDryCooling
	TypeCooling
	TypeMixing
	TypeHumidification
)

func (p ProcessType) String() string {
	switch p {
	case TypeHeating:
		return "HEATING"
	case TypeDryCooling:
		return "DRY_COOLING"
	case TypeCooling:
		return "COOLING"
	case TypeMixing:
		return "MIXING"
	case TypeHumidification:
		return "HUMIDIFICATION"
	default:
		return "UNKNOWN"
	}
}

// ProcessMode names the parameterisation a block was configured with.
type ProcessMode string

const (
	ModeFromPower       ProcessMode = "FROM_POWER"
	ModeFromTemperature ProcessMode = "FROM_TEMPERATURE"
	ModeFromHumidity    ProcessMode = "FROM_HUMIDITY"
	ModeSimpleMixing    ProcessMode = "SIMPLE_MIXING"
	ModeMultipleMixing  ProcessMode = "MULTIPLE_MIXING"
)

// ProcessResult carries the outcome of a single Run() (spec.md §4.5).
type ProcessResult struct {
	ProcessType ProcessType
	ProcessMode ProcessMode
	InletFlow   flows.FlowOfHumidAir
	OutletFlow  flows.FlowOfHumidAir

	// HeatOfProcess is positive when heat is added to the air, negative
	// when removed.
	HeatOfProcess quantity.Power

	// CondensateFlow is non-nil only for a Cooling run that condensed
	// water out of the air stream.
	CondensateFlow *flows.FlowOfLiquidWater

	// BypassFactor is non-nil only for Cooling runs.
	BypassFactor *quantity.BypassFactor

	// Clamped reports whether Cooling's bypass factor saturated at 0 or 1,
	// meaning the solved outlet state exceeded what the coil surface
	// temperature bound allows.
	Clamped bool

	// RecirculationFlows is non-nil only for Mixing runs (SIMPLE_MIXING and
	// MULTIPLE_MIXING alike) and holds every mixed stream except the inlet.
	RecirculationFlows []flows.FlowOfHumidAir
}

// Block is the capability every process block exposes; no inheritance,
// per spec.md §9.
type Block interface {
	InputConnector() *connector.Input[flows.FlowOfHumidAir]
	OutputConnector() *connector.Output[flows.FlowOfHumidAir]
	ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir])
	Run() (ProcessResult, error)
	ProcessType() ProcessType
	ProcessMode() ProcessMode
	Validate() error
	ResetProcess()
}

// dryBulbTemperatureOf wraps the Brent-based enthalpy inversion shared by
// every block that must recover a temperature from (i, x).
func dryBulbTemperatureOf(iKJPerKg, x float64) (float64, error) {
	return equations.HumidAirDryBulbTemperature(iKJPerKg, x)
}

// describeParams renders a block's configuration as an introspectable
// dbf.Params record, the uniform parameter surface spec.md §6 implies for
// every block's FROM_POWER/FROM_TEMPERATURE/FROM_HUMIDITY/target fields.
func describeParams(kv map[string]float64) dbf.Params {
	var params dbf.Params
	for name, value := range kv {
		params = append(params, &dbf.P{N: name, V: value})
	}
	return params
}

func newBrentSolver() *solver.Brent { return solver.NewBrent() }

func wrapBlockError(t ProcessType, mode ProcessMode, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s/%s: %w", t, mode, err)
}

func mustSamePressure(a, b quantity.Pressure, eps float64) error {
	if !a.IsEqualWithPrecision(b, eps) {
		return xerrors.IncompatibleState("streams do not share pressure: %s vs %s", a, b)
	}
	return nil
}
