package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a store backed by a throwaway database file
func setupTestStore(t *testing.T) *NoteStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNoteStore_CreateNote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	note, err := store.CreateNote(ctx, "Groceries", "milk, eggs")
	require.NoError(t, err)

	assert.Equal(t, int64(1), note.ID)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))
}

func TestNoteStore_CreateThenGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.CreateNote(ctx, "First", "body")
	require.NoError(t, err)

	got, err := store.GetNote(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestNoteStore_GetNote_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetNote(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteStore_UpdateNote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.CreateNote(ctx, "Groceries", "milk, eggs")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := store.UpdateNote(ctx, created.ID, "Groceries v2", "milk")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Groceries v2", updated.Title)
	assert.Equal(t, "milk", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestNoteStore_UpdateNote_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.UpdateNote(context.Background(), 42, "title", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteStore_DeleteNote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.CreateNote(ctx, "Doomed", "")
	require.NoError(t, err)

	require.NoError(t, store.DeleteNote(ctx, created.ID))

	_, err = store.GetNote(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteStore_DeleteNote_NotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.DeleteNote(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteStore_IDsNotReusedAfterDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.CreateNote(ctx, "first", "")
	require.NoError(t, err)
	require.NoError(t, store.DeleteNote(ctx, first.ID))

	second, err := store.CreateNote(ctx, "second", "")
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestNoteStore_GetAllNotes_Ordering(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	a, err := store.CreateNote(ctx, "a", "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	b, err := store.CreateNote(ctx, "b", "")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	c, err := store.CreateNote(ctx, "c", "")
	require.NoError(t, err)

	notes, err := store.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, []int64{c.ID, b.ID, a.ID}, []int64{notes[0].ID, notes[1].ID, notes[2].ID})

	// Touching the oldest note moves it to the front
	time.Sleep(10 * time.Millisecond)
	_, err = store.UpdateNote(ctx, a.ID, "a touched", "")
	require.NoError(t, err)

	notes, err = store.GetAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, a.ID, notes[0].ID)
}

func TestNoteStore_GetAllNotes_Empty(t *testing.T) {
	store := setupTestStore(t)

	notes, err := store.GetAllNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.NotNil(t, notes)
}

func TestNoteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	store, err := Open(path)
	require.NoError(t, err)

	created, err := store.CreateNote(context.Background(), "durable", "survives reopen")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	got, err := reopened.GetNote(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Title)
	assert.Equal(t, "survives reopen", got.Content)
}
