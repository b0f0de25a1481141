// Package apperr defines the stable error kinds every operation reports.
// Services wrap these sentinels with context; the HTTP layer maps each
// kind to a status code and never leaks anything else to the caller.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("unavailable")
	ErrInternal          = errors.New("internal error")
)

// Wrap annotates a kind with a human-readable message, keeping the kind
// matchable with errors.Is.
func Wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
}

// Kind reports the sentinel an error wraps, defaulting to ErrInternal.
func Kind(err error) error {
	for _, k := range []error{
		ErrUnauthorized, ErrForbidden, ErrNotFound, ErrInvalidInput,
		ErrInvalidTransition, ErrConflict, ErrUnavailable,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}
