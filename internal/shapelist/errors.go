package shapelist

import "errors"

// Sentinel errors for list operations.
var (
	// ErrFull indicates an add was attempted on a list at capacity.
	ErrFull = errors.New("shape list is full")
	// ErrInvalidShape indicates a NaN value or a negative size parameter.
	ErrInvalidShape = errors.New("input was invalid")
	// ErrEmpty indicates an index operation on an empty list.
	ErrEmpty = errors.New("list is already empty")
	// ErrOutOfBounds indicates an index outside [0, Len()).
	ErrOutOfBounds = errors.New("index out of bounds")
)

// Kind classifies a list error for programmatic handling.
type Kind string

const (
	// KindValidation indicates out-of-domain shape parameters.
	KindValidation Kind = "validation"
	// KindCapacity indicates the list is full.
	KindCapacity Kind = "capacity"
	// KindBounds indicates a bad index or an empty list.
	KindBounds Kind = "bounds"
)

// Error records a failed list operation. The list is never modified when an
// Error is returned.
type Error struct {
	Kind  Kind
	Op    string // "add circle", "remove", ...
	Field string // offending parameter for validation errors
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Op + ": " + e.Field + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err if it wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return "", false
}
