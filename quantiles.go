package classbreaks

import (
	"math"

	"golang.org/x/exp/constraints"
)

// quantileBias is added before flooring the rank of each intermediate
// quantile. Exact halves round down.
const quantileBias = 0.49

// Quantiles returns k classes holding roughly len(sorted)/k values each.
// Intermediate boundary i is the sample value at 1-based rank
// floor(i*n/k + 0.49); boundaries are always actual sample values.
//
// sorted must be in ascending order. Returns nil for an empty sample; k < 1
// is treated as 1.
func Quantiles[T constraints.Float](sorted []T, k int) []T {
	n := len(sorted)
	if n == 0 {
		return nil
	}
	k = max(k, 1)

	step := float64(n) / float64(k)
	bounds := make([]T, k+1)
	bounds[0] = sorted[0]
	for i := 1; i < k; i++ {
		idx := int(math.Floor(float64(i)*step+quantileBias)) - 1
		bounds[i] = sorted[min(max(idx, 0), n-1)]
	}
	bounds[k] = sorted[n-1]
	return bounds
}
