package classbreaks

import "slices"

// ClassIndex returns the class holding v. Class i covers
// (Bounds[i], Bounds[i+1]]; class 0 also covers Bounds[0], so the sample
// minimum belongs to class 0. ok is false when v lies below Min, above Max,
// or is NaN.
func (r *Result[T]) ClassIndex(v T) (class int, ok bool) {
	if len(r.Bounds) < 2 || !(v >= r.Bounds[0]) {
		return 0, false
	}
	// First upper bound >= v.
	i, _ := slices.BinarySearch(r.Bounds[1:], v)
	if i == len(r.Bounds)-1 {
		return 0, false
	}
	return i, true
}

// Classify returns the class of every value in values, with -1 for values
// outside [Min, Max].
func (r *Result[T]) Classify(values []T) []int {
	classes := make([]int, len(values))
	for i, v := range values {
		c, ok := r.ClassIndex(v)
		if !ok {
			c = -1
		}
		classes[i] = c
	}
	return classes
}

// Counts returns how many of values fall in each class. Values outside
// [Min, Max] are not counted.
func (r *Result[T]) Counts(values []T) []int {
	counts := make([]int, r.ClassCount)
	for _, v := range values {
		if c, ok := r.ClassIndex(v); ok {
			counts[c]++
		}
	}
	return counts
}
