package driven

import (
	"context"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// NoteStore persists notes. Backed by SQLite for durable storage and
// by an in-memory implementation for tests and ephemeral sessions.
type NoteStore interface {
	// SaveNote stores or updates a note.
	SaveNote(ctx context.Context, note *domain.Note) error

	// GetNote retrieves a note by ID. Returns domain.ErrNotFound
	// when the note does not exist.
	GetNote(ctx context.Context, id string) (*domain.Note, error)

	// DeleteNote removes a note by ID. Returns domain.ErrNotFound
	// when the note does not exist.
	DeleteNote(ctx context.Context, id string) error

	// ListNotes returns all notes ordered by creation time, then ID.
	// This ordering defines the corpus order used by search results.
	ListNotes(ctx context.Context) ([]domain.Note, error)
}
