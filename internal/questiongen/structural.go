package questiongen

import "fmt"

// optionCount is the fixed number of options per question.
const optionCount = 4

// StructuralValidator checks that required fields are present and that the
// answer resolves to one of the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if len(q.Text) > 500 {
		return &ValidationError{Validator: v.Name(), Message: "question text exceeds 500 characters"}
	}
	if len(q.Options) != optionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d options, want %d", len(q.Options), optionCount),
		}
	}
	for i, opt := range q.Options {
		if opt == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i+1),
			}
		}
	}
	if q.Answer == "" {
		return &ValidationError{Validator: v.Name(), Message: "correct answer is empty"}
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("correct answer %q is not among the options", q.Answer),
	}
}
