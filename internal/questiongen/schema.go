package questiongen

import "github.com/abhisek/prepdeck/internal/llm"

// QuestionSetSchema defines the JSON schema for a generated question set.
var QuestionSetSchema = &llm.Schema{
	Name:        "test-question-set",
	Description: "A complete multiple-choice question set for one mock test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "All questions for the test, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, plain ASCII text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 answer options, all distinct",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, matching one options entry exactly",
						},
						"subject": map[string]any{
							"type":        "string",
							"description": "The subject this question belongs to",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "subject"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
