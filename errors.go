package classbreaks

import "errors"

var (
	// ErrUnknownMethod indicates a method name outside the supported set.
	ErrUnknownMethod = errors.New("classbreaks: unknown classification method")

	// ErrSampleTooSmall indicates fewer than two values to classify.
	ErrSampleTooSmall = errors.New("classbreaks: sample too small")

	// ErrInvalidClassCount indicates a class count outside [2, len(sample)].
	ErrInvalidClassCount = errors.New("classbreaks: invalid class count")

	// ErrNonFiniteValue indicates a NaN or infinite value in the sample.
	ErrNonFiniteValue = errors.New("classbreaks: non-finite value in sample")

	// ErrValueOutOfRange indicates a value outside [Min, Max] of a Result.
	ErrValueOutOfRange = errors.New("classbreaks: value outside classified range")
)
