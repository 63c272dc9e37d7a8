package classbreaks

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/TrevorS/classbreaks/stats"
)

// Result is a frozen classification of one sample.
type Result[T constraints.Float] struct {
	// Method is the algorithm that produced Bounds.
	Method Method

	// ClassCount is the number of classes actually produced. It equals the
	// requested count except for MethodHeadTail and MethodTailHead, which
	// derive it from the data.
	ClassCount int

	// Bounds holds ClassCount+1 non-decreasing break values. Bounds[0] is
	// the sample minimum and Bounds[ClassCount] the sample maximum. Class i
	// covers (Bounds[i], Bounds[i+1]], with class 0 also covering Bounds[0].
	// Callers must treat it as read-only.
	Bounds []T

	// Min, Max and Mean describe the classified sample.
	Min  T
	Max  T
	Mean T
}

// New validates sample and classCount, then classifies a sorted copy of
// sample with method. The caller's slice is never reordered.
//
// classCount must lie in [2, len(sample)] for every method except
// MethodHeadTail and MethodTailHead, which ignore it.
func New[T constraints.Float](classCount int, sample []T, method Method) (*Result[T], error) {
	if err := validate(classCount, sample, method); err != nil {
		return nil, err
	}

	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	bounds := computeBreaks(method, sorted, classCount)
	return &Result[T]{
		Method:     method,
		ClassCount: len(bounds) - 1,
		Bounds:     bounds,
		Min:        sorted[0],
		Max:        sorted[len(sorted)-1],
		Mean:       stats.Mean(sorted),
	}, nil
}

// validate checks the inputs of New in a fixed order so the first failing
// rule is the one reported.
func validate[T constraints.Float](classCount int, sample []T, method Method) error {
	n := len(sample)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 values, got %d", ErrSampleTooSmall, n)
	}
	for i, v := range sample {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: sample[%d] = %v", ErrNonFiniteValue, i, v)
		}
	}
	if !method.valid() {
		return fmt.Errorf("%w %q", ErrUnknownMethod, string(method))
	}
	if method.fixedClassCount() && (classCount < 2 || classCount > n) {
		return fmt.Errorf("%w: %s needs 2 <= classes <= %d, got %d", ErrInvalidClassCount, method, n, classCount)
	}
	return nil
}

// computeBreaks dispatches a validated, sorted sample to its break function.
func computeBreaks[T constraints.Float](method Method, sorted []T, classCount int) []T {
	switch method {
	case MethodEqualInterval:
		return EqualInterval(sorted, classCount)
	case MethodQuantiles:
		return Quantiles(sorted, classCount)
	case MethodArithmetic:
		return Arithmetic(sorted, classCount)
	case MethodHeadTail:
		return HeadTail(sorted)
	case MethodTailHead:
		return TailHead(sorted)
	default:
		// MethodNaturalBreaks.
		return NaturalBreaks(sorted, classCount)
	}
}

func isInf[T constraints.Float](v T) bool { return math.IsInf(float64(v), 0) }
