package store

import (
	"context"
	"fmt"
	"time"
)

type eventRepo struct {
	store *Store
}

// EventRepo returns the LLM call event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{store: s}
}

func (r *eventRepo) AppendLLMCall(ctx context.Context, data LLMCallData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO llm_calls
		  (model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Model, data.Purpose, data.InputTokens, data.OutputTokens,
		data.LatencyMs, success, data.ErrorMessage, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert llm call: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMCalls(ctx context.Context, limit int) ([]LLMCallRow, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at
		FROM llm_calls
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm calls: %w", err)
	}
	defer rows.Close()

	var out []LLMCallRow
	for rows.Next() {
		var row LLMCallRow
		var success int
		var createdAt int64
		if err := rows.Scan(
			&row.ID, &row.Model, &row.Purpose, &row.InputTokens, &row.OutputTokens,
			&row.LatencyMs, &success, &row.ErrorMessage, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan llm call: %w", err)
		}
		row.Success = success != 0
		row.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, row)
	}
	return out, rows.Err()
}
