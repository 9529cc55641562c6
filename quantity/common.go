package quantity

import "math"

// isEqualWithPrecision is the shared comparator behind every quantity's
// IsEqualWithPrecision method.
func isEqualWithPrecision(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
