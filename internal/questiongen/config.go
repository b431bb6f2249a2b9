package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list run on every question in the set.
	// The first failure rejects the whole set.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. A full mock
	// paper is 50 questions, so the budget is sized for the large case.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many earlier questions are echoed into
	// the prompt for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&UniqueOptionsValidator{},
		},
		MaxTokens:         8192,
		Temperature:       0.7,
		MaxPriorQuestions: 20,
	}
}
