package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/prepdeck/internal/llm"
)

func validSetJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question": "What is 7 * 8?",
				"options": ["54", "56", "58", "64"],
				"correct_answer": "56",
				"subject": "Mathematics"
			},
			{
				"question": "Which gas do plants absorb during photosynthesis?",
				"options": ["Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"],
				"correct_answer": "Carbon dioxide",
				"subject": "Science"
			}
		]
	}`)
}

func TestGenerate_ParsesSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSetJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), GenerateInput{Subject: "Mixed", Count: 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Answer != "56" {
		t.Errorf("answer: got %q, want %q", qs[0].Answer, "56")
	}
	if qs[1].Subject != "Science" {
		t.Errorf("subject: got %q, want %q", qs[1].Subject, "Science")
	}
	if len(qs[1].Options) != 4 {
		t.Errorf("got %d options, want 4", len(qs[1].Options))
	}
}

func TestGenerate_SubjectPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validSetJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Subject:        "Science",
		Count:          2,
		PriorQuestions: []string{"What is the boiling point of water?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Subject: Science") {
		t.Errorf("prompt missing subject:\n%s", msg)
	}
	if !strings.Contains(msg, "boiling point") {
		t.Errorf("prompt missing prior question:\n%s", msg)
	}
	if mock.Calls[0].Schema != QuestionSetSchema {
		t.Error("request did not carry the question set schema")
	}
}

// setJSONOfSize builds a valid set of n distinct questions.
func setJSONOfSize(n int) json.RawMessage {
	var b strings.Builder
	b.WriteString(`{"questions": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b,
			`{"question": "What is %d + %d?", "options": ["%d", "%d", "%d", "%d"], "correct_answer": "%d", "subject": "Mathematics"}`,
			i, i, 2*i, 2*i+1, 2*i+2, 2*i+3, 2*i)
	}
	b.WriteString(`]}`)
	return json.RawMessage(b.String())
}

func TestGenerate_SectionPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: setJSONOfSize(50)})
	gen := New(mock, DefaultConfig())

	input := GenerateInput{Sections: []Section{
		{Subject: "Mathematics", Count: 15},
		{Subject: "Science", Count: 15},
		{Subject: "English", Count: 10},
		{Subject: "General Knowledge", Count: 10},
	}}
	if input.Total() != 50 {
		t.Fatalf("total: got %d, want 50", input.Total())
	}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "50 questions total") {
		t.Errorf("prompt missing total:\n%s", msg)
	}
	if !strings.Contains(msg, "- English: 10 questions") {
		t.Errorf("prompt missing section line:\n%s", msg)
	}
}

func TestGenerate_EmptySetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "Science", Count: 10})
	if err == nil {
		t.Fatal("expected error for empty set")
	}
}

func TestGenerate_ShortSetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: setJSONOfSize(3)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "Science", Count: 10})
	if err == nil {
		t.Fatal("expected error for undersized set")
	}
	if !strings.Contains(err.Error(), "3") || !strings.Contains(err.Error(), "10") {
		t.Errorf("error should name both counts, got: %v", err)
	}
}

func TestGenerate_ZeroCountRejectedWithoutCall(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "Science"})
	if err == nil {
		t.Fatal("expected error for zero count")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	wantErr := &llm.ErrProviderUnavailable{Err: errors.New("down")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "Science", Count: 10})
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerate_InvalidQuestionRejectsSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"questions": [{
				"question": "Pick the duplicate.",
				"options": ["a", "b", "b", "c"],
				"correct_answer": "b",
				"subject": "Science"
			}]
		}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "Science", Count: 1})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if verr.Validator != "unique-options" {
		t.Errorf("validator: got %q, want unique-options", verr.Validator)
	}
}
