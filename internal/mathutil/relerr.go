package mathutil

import "math"

// RelErr returns |got-want| / max(|want|, floor). floor keeps the ratio
// finite when want is zero or tiny.
func RelErr(got, want, floor float64) float64 {
	den := math.Max(math.Abs(want), floor)
	return math.Abs(got-want) / den
}

// MaxRelErr returns the largest element-wise RelErr between got and want,
// using the largest magnitude in want as the floor. Slices must be the same
// length; a length mismatch reports +Inf.
func MaxRelErr(got, want []float64) float64 {
	if len(got) != len(want) {
		return math.Inf(1)
	}
	scale := 0.0
	for _, w := range want {
		scale = math.Max(scale, math.Abs(w))
	}
	if scale == 0 {
		scale = 1
	}
	worst := 0.0
	for i := range got {
		e := RelErr(got[i], want[i], scale)
		if math.IsNaN(e) {
			return e
		}
		worst = math.Max(worst, e)
	}
	return worst
}
