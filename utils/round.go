package utils

import (
	"math"
	"strconv"
)

// Round rounds v to the given number of decimal places (half away from zero).
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// FormatDecimal renders v in its shortest form but always with a fractional part,
// so 20 prints as "20.0" and 0.5 as "0.5". Used in complaint text.
func FormatDecimal(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
