package leaderboard_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepdeck/internal/leaderboard"
)

func entry(name string, score int) leaderboard.Entry {
	return leaderboard.Entry{
		Name:    name,
		Score:   score,
		Subject: "Mathematics",
		TakenAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_RecordAndTop(t *testing.T) {
	s := leaderboard.NewService(leaderboard.NewMemoryStore(), 5)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, entry("Asha", 7)))
	require.NoError(t, s.Record(ctx, entry("Bilal", 9)))
	require.NoError(t, s.Record(ctx, entry("Chitra", 8)))

	top, err := s.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "Bilal", top[0].Name)
	require.Equal(t, "Chitra", top[1].Name)
	require.Equal(t, "Asha", top[2].Name)
}

func TestService_TruncatesToTopFive(t *testing.T) {
	s := leaderboard.NewService(leaderboard.NewMemoryStore(), 5)
	ctx := context.Background()

	for i, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		require.NoError(t, s.Record(ctx, entry(name, i)))
	}

	top, err := s.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, 5)

	// Sorted descending, lowest two scores gone.
	for i := 1; i < len(top); i++ {
		require.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
	require.Equal(t, 6, top[0].Score)
	require.Equal(t, 2, top[4].Score)
}

func TestService_TiesKeepAppendOrder(t *testing.T) {
	s := leaderboard.NewService(leaderboard.NewMemoryStore(), 5)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, entry("first", 4)))
	require.NoError(t, s.Record(ctx, entry("second", 4)))

	top, err := s.Top(ctx)
	require.NoError(t, err)
	require.Equal(t, "first", top[0].Name)
	require.Equal(t, "second", top[1].Name)
}

func TestService_SaveFailureSurfaces(t *testing.T) {
	ms := leaderboard.NewMemoryStore()
	ms.FailSave = errors.New("disk full")
	s := leaderboard.NewService(ms, 5)

	err := s.Record(context.Background(), entry("Asha", 5))
	require.ErrorContains(t, err, "disk full")
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board", "leaderboard.json")
	fs := leaderboard.NewFileStore(path)
	ctx := context.Background()

	// Missing file is an empty board.
	entries, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	want := []leaderboard.Entry{entry("Asha", 5), entry("Bilal", 3)}
	require.NoError(t, fs.Save(ctx, want))

	got, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_ClearEmptiesBoard(t *testing.T) {
	s := leaderboard.NewService(leaderboard.NewMemoryStore(), 5)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, entry("Asha", 5)))
	require.NoError(t, s.Clear(ctx))

	top, err := s.Top(ctx)
	require.NoError(t, err)
	require.Empty(t, top)
}
