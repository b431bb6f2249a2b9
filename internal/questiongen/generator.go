package questiongen

import "context"

// Generator produces complete question sets using an LLM provider.
type Generator interface {
	// Generate produces the full question set for one test in a single
	// call. Every returned question has passed the configured validators.
	// A provider failure, an empty set, or a validation failure surfaces
	// as an error; no partial set is returned.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}
