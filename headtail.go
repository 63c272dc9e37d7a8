package classbreaks

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/TrevorS/classbreaks/stats"
)

// HeadTail computes head/tail breaks for heavily right-skewed samples.
//
// Starting from the sample mean, it repeatedly keeps the "head" (values
// strictly greater than the current mean), takes the mean of that head as
// the next boundary, and stops once the head holds fewer than two values.
// The number of classes is decided by the data.
//
// The returned bounds start at min and end at max. A constant sample yields
// [min, max]. sorted must be in ascending order; returns nil for an empty
// sample.
func HeadTail[T constraints.Float](sorted []T) []T {
	n := len(sorted)
	if n == 0 {
		return nil
	}

	bounds := []T{sorted[0]}
	subset := sorted
	mean := stats.Mean(subset)
	for {
		i := sort.Search(len(subset), func(i int) bool { return subset[i] > mean })
		// No split: the remaining values are equal up to rounding.
		if i == 0 || i == len(subset) {
			break
		}
		subset = subset[i:]
		mean = stats.Mean(subset)
		bounds = append(bounds, mean)
		if len(subset) < 2 {
			break
		}
	}
	return closeBounds(bounds, sorted[n-1])
}

// TailHead mirrors HeadTail for left-skewed samples: it keeps the values
// strictly less than the current mean at every step. Boundaries are returned
// in ascending order, from min to max.
func TailHead[T constraints.Float](sorted []T) []T {
	n := len(sorted)
	if n == 0 {
		return nil
	}

	bounds := []T{sorted[n-1]}
	subset := sorted
	mean := stats.Mean(subset)
	for {
		i := sort.Search(len(subset), func(i int) bool { return subset[i] >= mean })
		if i == 0 || i == len(subset) {
			break
		}
		subset = subset[:i]
		mean = stats.Mean(subset)
		bounds = append(bounds, mean)
		if len(subset) < 2 {
			break
		}
	}
	bounds = closeBounds(bounds, sorted[0])
	slices.Reverse(bounds)
	return bounds
}

// closeBounds makes the last recursive boundary the sample extreme it
// approximates, or appends it when no split happened at all.
func closeBounds[T constraints.Float](bounds []T, extreme T) []T {
	if len(bounds) == 1 {
		return append(bounds, extreme)
	}
	bounds[len(bounds)-1] = extreme
	return bounds
}
