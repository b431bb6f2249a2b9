package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the app talks to when it
// needs generated content. Implementations wrap one hosted LLM API.
type Provider interface {
	// Generate sends one prompt and returns the structured response.
	// When the request carries a Schema, the returned Content is JSON that
	// has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model identifier the provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Test generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode and the response must conform to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back from the model.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "test-question-set". Used as
	// the schema name for OpenAI and as the cache key for validation.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage holds token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
