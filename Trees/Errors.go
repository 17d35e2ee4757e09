package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeComparison is returned when two values can't be compared.
	ErrTypeComparison = errors.New("values are not comparable")
	// ErrInvalidOperand is returned by set operations given a nil tree.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrCorrupt is wrapped by every error Check returns.
	ErrCorrupt = errors.New("corrupt tree")
)

// ComparisonError records the values a comparator failed on. It unwraps to
// ErrTypeComparison.
type ComparisonError struct {
	A, B  any
	Cause any
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot compare %v (%T) with %v (%T): %v", e.A, e.A, e.B, e.B, e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	return ErrTypeComparison
}

// guard turns a panicking comparator into a ComparisonError.
func guard[T any](cmp func(a, b T) int) func(a, b T) (int, error) {
	return func(a, b T) (c int, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &ComparisonError{a, b, r}
			}
		}()
		return cmp(a, b), nil
	}
}
