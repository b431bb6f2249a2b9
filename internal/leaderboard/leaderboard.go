// Package leaderboard maintains the bounded, sorted list of best test
// attempts. The list is rebuilt and re-sorted on every insert, which is
// fine at five entries and one insert per completed test.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultSize is how many top attempts are kept.
const DefaultSize = 5

// Entry is one recorded attempt.
type Entry struct {
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	Subject  string    `json:"subject"`
	TakenAt  time.Time `json:"takenAt"`
	PhotoRef string    `json:"photoRef,omitempty"`
}

// Store persists the entry list under a single named key. Implementations:
// the in-memory fake (tests), the JSON file store, and the SQLite store.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, entries []Entry) error
}

// Service applies the top-N policy over an injected Store.
type Service struct {
	mu    sync.Mutex
	store Store
	size  int
}

// NewService creates a Service keeping the top size entries. size <= 0
// falls back to DefaultSize.
func NewService(store Store, size int) *Service {
	if size <= 0 {
		size = DefaultSize
	}
	return &Service{store: store, size: size}
}

// Record appends the entry, re-sorts descending by score, truncates to the
// top N, and persists the result. The read-modify-write runs as one step
// under the service lock so concurrent completions cannot lose updates.
// Ties keep append order: at equal score the older entry ranks first.
func (s *Service) Record(ctx context.Context, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load leaderboard: %w", err)
	}

	entries = append(entries, e)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > s.size {
		entries = entries[:s.size]
	}

	if err := s.store.Save(ctx, entries); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// Top returns the persisted entries, best first. A missing list is an
// empty board, not an error.
func (s *Service) Top(ctx context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return entries, nil
}

// Clear wipes the persisted list.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, nil); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	return nil
}
