package recruit

import (
	"errors"
	"fmt"
)

// The four error kinds every operation reports. Callers classify failures
// with errors.Is against these sentinels.
var (
	// ErrValidation marks malformed or semantically invalid input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unresolved job, candidate or application reference.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a business-rule conflict between otherwise valid entities.
	ErrConflict = errors.New("conflict")
	// ErrState marks an operation that is invalid in the current lifecycle state.
	ErrState = errors.New("invalid state")
)

// Errorf wraps one of the sentinel kinds with a formatted message.
func Errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Kind names the error kind for logging. Unclassified errors yield "internal".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrState):
		return "state"
	default:
		return "internal"
	}
}
