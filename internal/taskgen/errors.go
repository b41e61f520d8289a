package taskgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is wrapped by every *RangeError.
	ErrInvalidRange = errors.New("invalid range")

	// ErrRangeOverflow means results over the range do not fit in the
	// numeric type.
	ErrRangeOverflow = errors.New("range overflows numeric type")

	// ErrUnsatisfiable means no operand pair in range meets the result bound.
	ErrUnsatisfiable = errors.New("no task satisfies the range")

	// ErrEmptyMixture is returned by NewMixed without generators.
	ErrEmptyMixture = errors.New("mixture needs at least one generator")

	// ErrNilGenerator is returned by NewMixed when a member is nil.
	ErrNilGenerator = errors.New("nil generator in mixture")
)

// RangeError reports a construction range with min > max.
type RangeError struct {
	Min string
	Max string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%s, %s]: min must not exceed max", e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }
