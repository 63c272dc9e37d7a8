package classbreaks

import (
	"fmt"

	"github.com/TrevorS/classbreaks/stats"
)

// GoodnessOfVarianceFit scores how well the classification fits values:
//
//	GVF = (SDAM - SDCM) / SDAM
//
// where SDAM is the sum of squared deviations from the mean of all values
// and SDCM the sum, over classes, of squared deviations from each class
// mean. 1 is a perfect fit, 0 no better than a single class.
//
// Every value must lie within [Min, Max]; values is usually the sample the
// Result was built from.
func (r *Result[T]) GoodnessOfVarianceFit(values []T) (T, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 values, got %d", ErrSampleTooSmall, len(values))
	}

	groups := make([][]T, r.ClassCount)
	for i, v := range values {
		c, ok := r.ClassIndex(v)
		if !ok {
			return 0, fmt.Errorf("%w: values[%d] = %v not in [%v, %v]", ErrValueOutOfRange, i, v, r.Min, r.Max)
		}
		groups[c] = append(groups[c], v)
	}

	sdam := stats.SumPowDeviations(values, 2)
	if sdam == 0 {
		return 0, stats.ErrZeroVariance
	}
	var sdcm T
	for _, g := range groups {
		sdcm += stats.SumPowDeviations(g, 2)
	}
	return (sdam - sdcm) / sdam, nil
}
