package leaderboard

import "context"

// MemoryStore is an in-process Store for tests and ephemeral runs.
type MemoryStore struct {
	entries []Entry

	// FailSave, when set, is returned from Save to exercise the degraded
	// persistence path.
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) ([]Entry, error) {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, entries []Entry) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	m.entries = make([]Entry, len(entries))
	copy(m.entries, entries)
	return nil
}
