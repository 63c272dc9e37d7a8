package classbreaks

import "golang.org/x/exp/constraints"

// EqualInterval splits [min, max] of a sorted sample into k classes of equal
// width. Boundary i is min + i*(max-min)/k; the last boundary is exactly max
// so accumulated rounding never leaves the maximum unclassified.
//
// sorted must be in ascending order. Returns nil for an empty sample; k < 1
// is treated as 1.
func EqualInterval[T constraints.Float](sorted []T, k int) []T {
	if len(sorted) == 0 {
		return nil
	}
	k = max(k, 1)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	bounds := make([]T, k+1)
	bounds[0] = lo
	bounds[k] = hi

	width := (hi - lo) / T(k)
	if !isInf(width) {
		for i := 1; i < k; i++ {
			// T() forces rounding so the product is never fused into the add.
			bounds[i] = lo + T(T(i)*width)
		}
		return bounds
	}

	// hi-lo overflows: step by half widths, each of which is finite.
	half := (hi/2 - lo/2) / T(k)
	for i := 1; i < k; i++ {
		step := T(T(i) * half)
		bounds[i] = lo + step + step
	}
	return bounds
}
