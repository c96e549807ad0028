package layout

import (
	"cmp"
	"math"
)

// Ratio solves whole : part = value : x for x. A zero whole, or any result
// that is not a finite number, yields 0.
func Ratio(whole, part, value float64) float64 {
	if whole == 0 {
		return 0
	}
	x := part * value / whole
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Limit clamps value into [lo, hi].
func Limit[T cmp.Ordered](value, lo, hi T) T {
	return max(lo, min(value, hi))
}
