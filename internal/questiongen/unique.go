package questiongen

import "fmt"

// UniqueOptionsValidator rejects questions where two options carry the same
// text. Correctness is matched by string equality, so a duplicate would make
// the correct choice ambiguous.
type UniqueOptionsValidator struct{}

func (v *UniqueOptionsValidator) Name() string { return "unique-options" }

func (v *UniqueOptionsValidator) Validate(q Question) *ValidationError {
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option text %q", opt),
			}
		}
		seen[opt] = struct{}{}
	}
	return nil
}
