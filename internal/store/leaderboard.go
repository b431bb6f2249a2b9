package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/prepdeck/internal/leaderboard"
)

// leaderboardKey is the kv row holding the serialized board.
const leaderboardKey = "leaderboard"

type leaderboardStore struct {
	store *Store
}

// LeaderboardStore returns a leaderboard.Store persisting the board as a
// JSON array under a single key in the kv table.
func (s *Store) LeaderboardStore() leaderboard.Store {
	return &leaderboardStore{store: s}
}

func (l *leaderboardStore) Load(ctx context.Context) ([]leaderboard.Entry, error) {
	var raw string
	err := l.store.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, leaderboardKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	var entries []leaderboard.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return entries, nil
}

func (l *leaderboardStore) Save(ctx context.Context, entries []leaderboard.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	_, err = l.store.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		leaderboardKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}
