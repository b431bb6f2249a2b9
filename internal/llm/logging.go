package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/prepdeck/internal/store"
)

// loggingProvider records every request as a row in the local store so
// token spend and failures can be audited per purpose.
type loggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps p so every call is persisted as an event.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{inner: p, repo: repo}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMCallData{
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed audit write must not fail the request itself.
	if logErr := l.repo.AppendLLMCall(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM call: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
