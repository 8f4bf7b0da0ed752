package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/toolbox/internal/domain/history"
	"github.com/rpggio/toolbox/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_CreateList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := &history.Entry{Kind: "calculation", Title: "Calculation", Content: "2 + 2 = 4", CreatedAt: base}
	second := &history.Entry{Kind: "conversion", Title: "Conversion", Content: "1 km = 1000 m", CreatedAt: base.Add(time.Second)}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, second.ID, entries[0].ID)
	require.Equal(t, first.ID, entries[1].ID)
	require.Equal(t, "conversion", entries[0].Kind)
	require.True(t, entries[0].CreatedAt.Equal(second.CreatedAt))
}

func TestHistoryRepository_EqualTimestampsOrderByID(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &history.Entry{Kind: "qr", Title: "QR", Content: "x", CreatedAt: at}))
	}

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, []int64{3, 2, 1}, []int64{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestHistoryRepository_FractionalTimestampsOrder(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := &history.Entry{Kind: "k", Title: "later", Content: "c", CreatedAt: base.Add(500 * time.Millisecond)}
	earlier := &history.Entry{Kind: "k", Title: "earlier", Content: "c", CreatedAt: base.Add(450 * time.Millisecond)}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "later", entries[0].Title)
	require.Equal(t, "earlier", entries[1].Title)
}

func TestHistoryRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestHistoryRepository_DeleteIdempotent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	entry := &history.Entry{Kind: "calculation", Title: "Calculation", Content: "2 + 2 = 4"}
	require.NoError(t, repo.Create(ctx, entry))

	removed, err := repo.Delete(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.Delete(ctx, entry.ID)
	require.NoError(t, err)
	require.False(t, removed)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestHistoryRepository_IDsNotReused(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	entry := &history.Entry{Kind: "k", Title: "t", Content: "c"}
	require.NoError(t, repo.Create(ctx, entry))
	_, err := repo.Delete(ctx, entry.ID)
	require.NoError(t, err)

	next := &history.Entry{Kind: "k", Title: "t", Content: "c"}
	require.NoError(t, repo.Create(ctx, next))
	require.Greater(t, next.ID, entry.ID)
}

func TestHistoryRepository_Clear(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Create(ctx, &history.Entry{Kind: "k", Title: "t", Content: "c"}))
	}

	n, err := repo.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestHistoryRepository_StorageError(t *testing.T) {
	db := NewTestDB(t)
	repo := NewHistoryRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.List(context.Background())
	require.ErrorIs(t, err, repository.ErrStorage)

	var storageErr *repository.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "list history", storageErr.Op)
}
