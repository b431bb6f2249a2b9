package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider. The whole set
// is produced by one structured request.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// setOutput is the raw LLM response before validation.
type setOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Subject       string   `json:"subject"`
}

// Generate produces the full question set for one test.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Total() <= 0 {
		return nil, errors.New("question count must be positive")
	}

	ctx = llm.WithPurpose(ctx, "question-set")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate question set: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question set: %w", err)
	}
	if got, want := len(raw.Questions), input.Total(); got != want {
		return nil, fmt.Errorf("provider returned %d questions, want %d", got, want)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		q := Question{
			Text:    rq.Question,
			Options: rq.Options,
			Answer:  rq.CorrectAnswer,
			Subject: rq.Subject,
		}
		for _, v := range g.config.Validators {
			if verr := v.Validate(q); verr != nil {
				verr.Index = i
				return nil, verr
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}
