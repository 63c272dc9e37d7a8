// Package stats provides the scalar statistics used by the classification
// methods: mean, median, variance, standard deviation, kurtosis, root mean
// square, harmonic mean and geometric mean.
//
// Every function is generic over float32 and float64, reads its input
// without modifying it and keeps no state. Variance and standard deviation
// are population measures (divided by n, not n-1). The reductions are
// computed in float64 by gonum; float32 input is widened first.
package stats

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// float64s returns values as a []float64, reusing the slice when T is
// already float64.
func float64s[T constraints.Float](values []T) []float64 {
	if f, ok := any(values).([]float64); ok {
		return f
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean[T constraints.Float](values []T) T {
	if len(values) == 0 {
		return 0
	}
	return T(stat.Mean(float64s(values), nil))
}

// Median returns the middle value of values. For an even count it is the
// average of the two middle values. The input is not reordered; a sorted
// copy is used. Returns 0 for an empty slice.
func Median[T constraints.Float](values []T) T {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := slices.Clone(float64s(values))
	slices.Sort(sorted)
	// The empirical quantile at 0.5 is the lower middle value.
	lower := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if n%2 == 0 {
		return T((lower + sorted[n/2]) / 2)
	}
	return T(lower)
}

// SumPowDeviations returns the sum over values of (v - mean)^p for p >= 0.
func SumPowDeviations[T constraints.Float](values []T, p int) T {
	mean := Mean(values)
	var sum T
	for _, v := range values {
		sum += T(powi(v-mean, p))
	}
	return sum
}

// Variance returns the population variance of values, or 0 for an empty slice.
func Variance[T constraints.Float](values []T) T {
	if len(values) == 0 {
		return 0
	}
	return T(stat.PopVariance(float64s(values), nil))
}

// StandardDeviation returns the population standard deviation of values.
func StandardDeviation[T constraints.Float](values []T) T {
	if len(values) == 0 {
		return 0
	}
	return T(stat.PopStdDev(float64s(values), nil))
}

// RootMeanSquare returns sqrt(sum(v²)/n), or 0 for an empty slice.
func RootMeanSquare[T constraints.Float](values []T) T {
	if len(values) == 0 {
		return 0
	}
	return T(floats.Norm(float64s(values), 2) / math.Sqrt(float64(len(values))))
}

// Kurtosis returns the excess kurtosis of values (Fisher's definition, so a
// normal distribution scores 0.0) using the small-sample corrected estimator:
//
//	(n-1)/((n-2)(n-3)) * (n(n+1)·m4/m2² - 3(n-1))
//
// where m2 and m4 are the sums of squared and fourth-power deviations from
// the mean. At least four values with non-zero spread are required.
func Kurtosis[T constraints.Float](values []T) (T, error) {
	if len(values) < 4 {
		return 0, ErrTooFewValues
	}
	mean := Mean(values)
	var m2, m4 T
	for _, v := range values {
		d := v - mean
		m2 += T(d * d)
		m4 += T(d * d * d * d)
	}
	if m2 == 0 {
		return 0, ErrZeroVariance
	}
	n := T(len(values))
	return (n - 1) / ((n - 2) * (n - 3)) *
		(n*(n+1)*m4/(m2*m2) - 3*(n-1)), nil
}

// HarmonicMean returns n / sum(1/v). All values must be strictly positive.
func HarmonicMean[T constraints.Float](values []T) (T, error) {
	if len(values) == 0 {
		return 0, ErrTooFewValues
	}
	if err := checkPositive("HarmonicMean", values); err != nil {
		return 0, err
	}
	return T(stat.HarmonicMean(float64s(values), nil)), nil
}

// GeometricMean returns the n-th root of the product of values, taken in
// log space so large products never overflow. All values must be strictly
// positive.
func GeometricMean[T constraints.Float](values []T) (T, error) {
	if len(values) == 0 {
		return 0, ErrTooFewValues
	}
	if err := checkPositive("GeometricMean", values); err != nil {
		return 0, err
	}
	return T(stat.GeometricMean(float64s(values), nil)), nil
}

func checkPositive[T constraints.Float](fn string, values []T) error {
	for i, v := range values {
		if !(v > 0) {
			return &DomainError{Func: fn, Index: i, Value: float64(v)}
		}
	}
	return nil
}

// powi raises x to a non-negative integer power by repeated multiplication,
// which keeps squares bit-identical to x*x.
func powi[T constraints.Float](x T, p int) T {
	r := T(1)
	for i := 0; i < p; i++ {
		r *= x
	}
	return r
}
