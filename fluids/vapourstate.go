// Package fluids implements the engine's immutable fluid snapshots: DryAir,
// WaterVapour, LiquidWater and HumidAir. Every constructor validates its
// scalar inputs, invokes the equation layer, and memoises every derived
// property on the returned value — there is no mutation to invalidate a
// cache, since "mutation" is producing a new snapshot via a with* helper
// (spec.md §3, "Lifecycle & ownership"). Grounded on gofem's mdl/retention
// model style: plain struct of floats plus derived fields computed once at
// construction, no inheritance.
package fluids

// VapourState classifies a HumidAir snapshot by comparing its humidity
// ratio against the saturation ceiling and its dry-bulb temperature against
// 0 degC (spec.md §3).
type VapourState int

const (
	Unsaturated VapourState = iota
	Saturated
	WaterFog
	IceFog
)

func (s VapourState) String() string {
	switch s {
	case Unsaturated:
		return "UNSATURATED"
	case Saturated:
		return "SATURATED"
	case WaterFog:
		return "WATER_FOG"
	case IceFog:
		return "ICE_FOG"
	default:
		return "UNKNOWN"
	}
}

// vapourStateEpsilon is the tolerance used to treat x == Xmax as saturated
// rather than fogged, per spec.md §3.
const vapourStateEpsilon = 1e-9

func classifyVapourState(x, xMax, tdbC float64) VapourState {
	switch {
	case x < xMax-vapourStateEpsilon:
		return Unsaturated
	case x <= xMax+vapourStateEpsilon:
		return Saturated
	case tdbC > 0:
		return WaterFog
	default:
		return IceFog
	}
}
