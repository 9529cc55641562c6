package quantity

import "github.com/gurre/si"

// Distance holds a length, stored internally in meters. Used by the coil
// contact-surface geometry inputs some process configurations carry
// (e.g. duct sizing feeding a bypass-factor estimate).
type Distance struct {
	meter float64
}

// DistanceOfMeter constructs a Distance from a meter value.
func DistanceOfMeter(d float64) Distance { return Distance{meter: d} }

// DistanceOfMillimeter constructs a Distance from a millimeter value.
func DistanceOfMillimeter(d float64) Distance { return Distance{meter: d / 1000} }

// GetInMeter returns the distance in meters.
func (d Distance) GetInMeter() float64 { return d.meter }

// IsEqualWithPrecision reports whether d and other differ by no more than eps m.
func (d Distance) IsEqualWithPrecision(other Distance, eps float64) bool {
	return isEqualWithPrecision(d.meter, other.meter, eps)
}

// ToEngineering renders the distance using si's Length-dimensioned formatting.
func (d Distance) ToEngineering() string {
	return si.Unit{Value: d.meter, Dimension: si.Length}.String()
}

func (d Distance) String() string { return d.ToEngineering() }
