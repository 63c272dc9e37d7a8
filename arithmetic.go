package classbreaks

import "golang.org/x/exp/constraints"

// Arithmetic returns k classes whose widths grow as an arithmetic
// progression: w, 2w, 3w, ... kw with w = (max-min) / (1+2+...+k). It gives
// finer resolution near the minimum, which suits right-skewed samples.
//
// sorted must be in ascending order. Returns nil for an empty sample; k < 1
// is treated as 1.
func Arithmetic[T constraints.Float](sorted []T, k int) []T {
	if len(sorted) == 0 {
		return nil
	}
	k = max(k, 1)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	denom := k * (k + 1) / 2

	// When hi-lo overflows every step is added as two finite halves.
	width, parts := (hi-lo)/T(denom), 1
	if isInf(width) {
		width, parts = (hi/2-lo/2)/T(denom), 2
	}

	bounds := make([]T, k+1)
	bounds[0] = lo
	for i := 1; i <= k; i++ {
		step := T(T(i) * width)
		bounds[i] = bounds[i-1]
		for j := 0; j < parts; j++ {
			bounds[i] += step
		}
	}
	bounds[k] = hi
	return bounds
}
