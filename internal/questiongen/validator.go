package questiongen

import "fmt"

// Validator checks one ingested question. Implementations are stateless
// and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages, e.g.
	// "structural" or "unique-options".
	Name() string

	// Validate returns nil if the question passes, or a ValidationError
	// describing the failure.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string // name of the validator that failed
	Index     int    // position of the question within the set
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d rejected by %q: %s", e.Index+1, e.Validator, e.Message)
}
