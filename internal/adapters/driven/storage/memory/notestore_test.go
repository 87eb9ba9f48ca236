package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

func TestNoteStore_SaveAndGet(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()

	note := &domain.Note{ID: "n1", Title: "first", Tags: []string{"work"}}
	require.NoError(t, store.SaveNote(ctx, note))

	got, err := store.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)

	// Saving again overwrites.
	note.Title = "renamed"
	require.NoError(t, store.SaveNote(ctx, note))
	got, err = store.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
}

func TestNoteStore_GetMissingReturnsNotFound(t *testing.T) {
	store := NewNoteStore()

	_, err := store.GetNote(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteStore_SaveRejectsEmptyID(t *testing.T) {
	store := NewNoteStore()

	err := store.SaveNote(context.Background(), &domain.Note{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.SaveNote(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNoteStore_Delete(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, &domain.Note{ID: "n1"}))
	require.NoError(t, store.DeleteNote(ctx, "n1"))

	_, err := store.GetNote(ctx, "n1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.DeleteNote(ctx, "n1"), domain.ErrNotFound)
}

func TestNoteStore_ListOrdersByCreationThenID(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveNote(ctx, &domain.Note{ID: "b", CreatedAt: base}))
	require.NoError(t, store.SaveNote(ctx, &domain.Note{ID: "a", CreatedAt: base}))
	require.NoError(t, store.SaveNote(ctx, &domain.Note{ID: "c", CreatedAt: base.Add(-time.Hour)}))

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)

	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestNoteStore_ListCopiesAreIndependent(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, &domain.Note{ID: "n1", Title: "original"}))

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)
	notes[0].Title = "mutated"

	got, err := store.GetNote(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}
