package driving

import (
	"context"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// NoteService manages the note collection and keeps the search
// engine's corpus snapshot in step with it. Every mutation ends with
// a full re-initialisation of the engine.
type NoteService interface {
	// CreateNote mints a new note and persists it.
	CreateNote(ctx context.Context, title, body string, tags []string) (*domain.Note, error)

	// UpdateNote persists changes to an existing note.
	UpdateNote(ctx context.Context, note *domain.Note) error

	// DeleteNote removes a note by ID.
	DeleteNote(ctx context.Context, id string) error

	// GetNote retrieves a note by ID.
	GetNote(ctx context.Context, id string) (*domain.Note, error)

	// ListNotes returns all notes in stable corpus order.
	ListNotes(ctx context.Context) ([]domain.Note, error)

	// ImportNotes persists a batch of notes, refreshing the engine
	// once at the end.
	ImportNotes(ctx context.Context, notes []domain.Note) error
}
