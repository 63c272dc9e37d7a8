package classbreaks

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NaturalBreaks computes Jenks natural breaks: the k-class partition of a
// sorted sample that minimises the total within-class sum of squared
// deviations from each class mean.
//
// Algorithm (dynamic programming over prefixes, 1-based ranks):
//  1. cost(l, j) is the minimum total cost of the first l values split into
//     j classes; start(l, j) is the rank where the last of those classes
//     begins.
//  2. For every prefix l, grow the last class downward from rank l, keeping
//     running S1 = Σv, S2 = Σv² and count w. The class cost is S2 - S1²/w.
//  3. Combine it with cost(start-1, j-1) for each j in 2..k and keep the
//     minimum. Ties go to the longer last class.
//  4. Walk start() back from (n, k) to recover the k-1 cut points.
//
// Boundaries are min, the largest value of each of the first k-1 classes,
// and max, so every boundary is a sample value.
//
// Sums and costs are kept in float64 whatever T is, so float32 and float64
// samples holding the same values get the same partition. Values are first
// multiplied by a power of two that brings the largest magnitude into
// [0.5, 1); the scaling is exact and keeps v² finite for any finite sample.
//
// Complexity:
//
//	Time   = O(n²·k)
//	Memory = O(n·k) for the two tables
//
// sorted must be in ascending order. Returns nil for an empty sample; k is
// clamped to [1, len(sorted)].
func NaturalBreaks[T constraints.Float](sorted []T, k int) []T {
	n := len(sorted)
	if n == 0 {
		return nil
	}
	k = min(max(k, 1), n)

	scale := unitScale(sorted)

	// Row r holds the prefix of r+1 values, column c holds c+1 classes.
	cost := newTable(n, k, math.Inf(1))
	start := newTable(n, k, 1)
	cost.set(0, 0, 0)

	for l := 2; l <= n; l++ {
		var s1, s2, w, classCost float64
		for first := l; first >= 1; first-- {
			v := float64(sorted[first-1]) * scale
			s1 += v
			s2 += v * v
			w++
			// Clamp rounding residue on runs of equal values.
			classCost = max(s2-s1*s1/w, 0)

			if before := first - 1; before > 0 {
				for j := 2; j <= k; j++ {
					c := classCost + cost.at(before-1, j-2)
					if cost.at(l-1, j-1) >= c {
						cost.set(l-1, j-1, c)
						start.set(l-1, j-1, first)
					}
				}
			}
		}
		// After the inner loop the last class spans the whole prefix.
		cost.set(l-1, 0, classCost)
		start.set(l-1, 0, 1)
	}

	return jenksBounds(sorted, start, k)
}

// jenksBounds walks start back from (n, k) and returns the boundaries.
func jenksBounds[T constraints.Float](sorted []T, start *table[int], k int) []T {
	n := len(sorted)

	// cuts[i] is the 1-based rank of the last value in class i.
	cuts := make([]int, k-1)
	row := n
	for j := k; j > 1; j-- {
		// The first j-1 classes need at least j-1 values.
		row = max(start.at(row-1, j-1)-1, j-1)
		cuts[j-2] = row
	}

	bounds := make([]T, 0, k+1)
	bounds = append(bounds, sorted[0])
	for _, c := range cuts {
		bounds = append(bounds, sorted[c-1])
	}
	bounds = append(bounds, sorted[n-1])
	return bounds
}

// unitScale returns the power of two that maps the largest magnitude in
// sorted into [0.5, 1), or 1 when every value is zero. Subnormal peaks are
// scaled up only as far as float64 allows.
func unitScale[T constraints.Float](sorted []T) float64 {
	peak := max(math.Abs(float64(sorted[0])), math.Abs(float64(sorted[len(sorted)-1])))
	if peak == 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return 1
	}
	_, exp := math.Frexp(peak)
	return math.Ldexp(1, min(-exp, 1021))
}
