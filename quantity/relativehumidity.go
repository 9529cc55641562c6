package quantity

import "fmt"

// RelativeHumidity holds a relative humidity, stored internally as a
// percentage (0-100, with fogged states permitted slightly above 100).
type RelativeHumidity struct {
	percent float64
}

// RelativeHumidityOfPercent constructs a RelativeHumidity from a percentage value.
func RelativeHumidityOfPercent(rh float64) RelativeHumidity { return RelativeHumidity{percent: rh} }

// GetInPercent returns the relative humidity in percent.
func (rh RelativeHumidity) GetInPercent() float64 { return rh.percent }

// IsEqualWithPrecision reports whether rh and other differ by no more than eps percentage points.
func (rh RelativeHumidity) IsEqualWithPrecision(other RelativeHumidity, eps float64) bool {
	return isEqualWithPrecision(rh.percent, other.percent, eps)
}

// LessThanOrEqual reports whether rh <= other.
func (rh RelativeHumidity) LessThanOrEqual(other RelativeHumidity) bool {
	return rh.percent <= other.percent
}

// ToEngineering renders the relative humidity for diagnostics and console output.
func (rh RelativeHumidity) ToEngineering() string {
	return fmt.Sprintf("%.2f %%", rh.percent)
}

func (rh RelativeHumidity) String() string { return rh.ToEngineering() }
