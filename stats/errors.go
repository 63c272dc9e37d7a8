package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewValues is returned when a statistic is undefined for the
	// number of values supplied.
	ErrTooFewValues = errors.New("stats: too few values")

	// ErrZeroVariance is returned when every value is identical and the
	// statistic divides by the spread.
	ErrZeroVariance = errors.New("stats: values have zero variance")

	// ErrNonPositive is matched by every *DomainError.
	ErrNonPositive = errors.New("stats: non-positive value")
)

// DomainError reports a value outside the domain of a statistic that is only
// defined for strictly positive inputs.
type DomainError struct {
	Func  string
	Index int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("stats: %s requires only positive numbers as input (values[%d] = %g)", e.Func, e.Index, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrNonPositive }
