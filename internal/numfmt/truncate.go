// Package numfmt formats the numeric readouts printed beside diagrams.
package numfmt

import (
	"math"
	"strconv"
)

// exact is the magnitude past which float64 has no fractional bits left.
const exact = 1 << 53

// minPrecision keeps 10^p a normal float64; below it math.Pow10 underflows.
const minPrecision = -308

// Truncate floors value to precision decimal digits: floor(value·10^p)/10^p.
// Flooring goes toward negative infinity, so Truncate(-0.871, 2) is -0.88.
//
// The result is the largest k/10^p not above value. The scaled product is
// nudged by one step when binary rounding put it on the wrong side of an
// integer (0.29·100 is 28.999…96), which also makes Truncate idempotent.
// NaN and infinities are returned as they are. Precision below -308 is
// treated as -308.
func Truncate(value float64, precision int) float64 {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	scale := math.Pow10(max(precision, minPrecision))
	scaled := value * scale
	if math.IsInf(scaled, 0) || math.Abs(scaled) >= exact {
		return value
	}

	k := math.Floor(scaled)
	if (k+1)/scale <= value {
		k++
	} else if k/scale > value {
		k--
	}
	return k / scale
}

// Format renders the truncated value in its shortest form: 0.87, 5, -0.88.
func Format(value float64, precision int) string {
	return strconv.FormatFloat(Truncate(value, precision), 'f', -1, 64)
}

// Fixed renders the truncated value with exactly precision digits.
func Fixed(value float64, precision int) string {
	p := precision
	if p < 0 {
		p = 0
	}
	return strconv.FormatFloat(Truncate(value, precision), 'f', p, 64)
}
