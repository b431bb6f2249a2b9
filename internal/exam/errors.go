package exam

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition marks an operation attempted from a state that
// forbids it. The session state is never altered by such a call.
var ErrInvalidTransition = errors.New("invalid session transition")

// invalidTransition wraps ErrInvalidTransition with the failing operation
// and the state it was attempted from.
func invalidTransition(op string, status Status) error {
	return fmt.Errorf("%s while %s: %w", op, status, ErrInvalidTransition)
}

// GenerationError means the question generator failed or returned no usable
// questions. The session stays in the not-started state and the caller may
// retry with the same or a different configuration.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
