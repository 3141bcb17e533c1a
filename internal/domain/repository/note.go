package repository

import (
	"context"

	"notedesk/internal/domain/entity"
)

// NoteRepository defines the interface for note data operations.
type NoteRepository interface {
	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Note, error)
	// FindAll retrieves all notes, most recently updated first.
	FindAll(ctx context.Context) ([]*entity.Note, error)
	// Create persists a new note. The generated ID is set on the entity.
	Create(ctx context.Context, note *entity.Note) error
	// Update updates an existing note.
	Update(ctx context.Context, note *entity.Note) error
	// Delete deletes a note by its ID.
	Delete(ctx context.Context, id int64) error
	// Exists reports whether a note with the given ID is persisted.
	Exists(ctx context.Context, id int64) (bool, error)
	// Title returns the current title of the note with the given ID.
	Title(ctx context.Context, id int64) (string, error)
}
