package store

import (
	"context"
	"time"
)

// LLMCallData captures one LLM API call for the audit log.
type LLMCallData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMCallRow is one persisted audit log entry.
type LLMCallRow struct {
	ID        int64
	CreatedAt time.Time
	LLMCallData
}

// EventRepo records and serves LLM call events.
type EventRepo interface {
	AppendLLMCall(ctx context.Context, data LLMCallData) error

	// RecentLLMCalls returns up to limit calls, newest first.
	RecentLLMCalls(ctx context.Context, limit int) ([]LLMCallRow, error)
}

// AttemptData is one completed test attempt.
type AttemptData struct {
	ID           string
	StudentName  string
	StudentClass string
	Mode         string
	Subject      string
	Score        int
	Total        int
	Percentage   float64
	Band         string
	DurationSecs int
	FinishedAt   time.Time
}

// AttemptRepo persists completed attempts and serves the history view.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptData) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]AttemptData, error)
}
