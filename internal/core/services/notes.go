package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driven"
	"github.com/blaster151/zettelview-sub001/internal/core/ports/driving"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService owns note CRUD and keeps the search engine's corpus
// snapshot in step with the store: every mutation ends with a full
// re-initialisation. The engine never partially updates.
type NoteService struct {
	store  driven.NoteStore
	engine driving.SearchService
}

// NewNoteService creates a note service backed by the given store,
// feeding the given engine.
func NewNoteService(store driven.NoteStore, engine driving.SearchService) *NoteService {
	return &NoteService{store: store, engine: engine}
}

// CreateNote mints a new note and persists it.
func (s *NoteService) CreateNote(ctx context.Context, title, body string, tags []string) (*domain.Note, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
	}

	now := time.Now()
	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		Tags:      append([]string(nil), tags...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveNote(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	if err := s.RefreshEngine(ctx); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote persists changes to an existing note.
func (s *NoteService) UpdateNote(ctx context.Context, note *domain.Note) error {
	if note == nil || note.ID == "" {
		return fmt.Errorf("%w: note ID must not be empty", domain.ErrInvalidInput)
	}
	if _, err := s.store.GetNote(ctx, note.ID); err != nil {
		return fmt.Errorf("loading note %s: %w", note.ID, err)
	}

	note.UpdatedAt = time.Now()
	if err := s.store.SaveNote(ctx, note); err != nil {
		return fmt.Errorf("saving note %s: %w", note.ID, err)
	}
	return s.RefreshEngine(ctx)
}

// DeleteNote removes a note by ID.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.store.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	return s.RefreshEngine(ctx)
}

// GetNote retrieves a note by ID.
func (s *NoteService) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	note, err := s.store.GetNote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading note %s: %w", id, err)
	}
	return note, nil
}

// ListNotes returns all notes in stable corpus order.
func (s *NoteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// ImportNotes persists a batch of notes and refreshes the engine once.
func (s *NoteService) ImportNotes(ctx context.Context, notes []domain.Note) error {
	for i := range notes {
		if err := s.store.SaveNote(ctx, &notes[i]); err != nil {
			return fmt.Errorf("saving imported note %s: %w", notes[i].ID, err)
		}
	}
	logger.Info("imported %d notes", len(notes))
	return s.RefreshEngine(ctx)
}

// RefreshEngine rebuilds the corpus snapshot from the store. The
// engine swap is atomic, so searches racing a mutation see either the
// old corpus or the new one, never a mixture.
func (s *NoteService) RefreshEngine(ctx context.Context) error {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("refreshing corpus: %w", err)
	}
	s.engine.Initialize(notes)
	return nil
}
