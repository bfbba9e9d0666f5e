package weather

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("city not found")

// NotFoundError is returned when a city resolves neither through geocoding
// nor through the fallback table. It is never recovered internally.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`City "%s" not found. Please check the spelling and try again.`, e.City)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// TransientError wraps a network or payload failure of an upstream call.
// The Service absorbs it into a fallback attempt.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}
