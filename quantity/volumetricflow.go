package quantity

import "fmt"

// VolumetricFlow holds a volumetric flow rate, stored internally in m3/s.
type VolumetricFlow struct {
	cubicMeterPerSecond float64
}

// VolumetricFlowOfCubicMeterPerSecond constructs a VolumetricFlow from an m3/s value.
func VolumetricFlowOfCubicMeterPerSecond(v float64) VolumetricFlow {
	return VolumetricFlow{cubicMeterPerSecond: v}
}

// VolumetricFlowOfCubicMetersPerHour constructs a VolumetricFlow from an m3/h value.
func VolumetricFlowOfCubicMetersPerHour(v float64) VolumetricFlow {
	return VolumetricFlow{cubicMeterPerSecond: v / 3600}
}

// GetInCubicMeterPerSecond returns the volumetric flow in m3/s.
func (v VolumetricFlow) GetInCubicMeterPerSecond() float64 { return v.cubicMeterPerSecond }

// GetInCubicMetersPerHour returns the volumetric flow in m3/h.
func (v VolumetricFlow) GetInCubicMetersPerHour() float64 { return v.cubicMeterPerSecond * 3600 }

// IsEqualWithPrecision reports whether v and other differ by no more than eps m3/s.
func (v VolumetricFlow) IsEqualWithPrecision(other VolumetricFlow, eps float64) bool {
	return isEqualWithPrecision(v.cubicMeterPerSecond, other.cubicMeterPerSecond, eps)
}

// ToEngineering renders the volumetric flow for diagnostics and console output.
func (v VolumetricFlow) ToEngineering() string {
	return fmt.Sprintf("%.4f m3/h", v.GetInCubicMetersPerHour())
}

func (v VolumetricFlow) String() string { return v.ToEngineering() }
