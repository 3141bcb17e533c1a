package service

import (
	"context"

	"notedesk/internal/application/dto"
)

// NoteService defines the interface for note-related business logic.
type NoteService interface {
	// CreateNote persists a new note.
	CreateNote(ctx context.Context, req dto.CreateNoteRequest) (dto.NoteResponse, error)
	// GetNote retrieves a note by its ID.
	GetNote(ctx context.Context, id int64) (dto.NoteResponse, error)
	// ListNotes retrieves all notes, most recently updated first.
	ListNotes(ctx context.Context) ([]dto.NoteResponse, error)
	// UpdateNote updates a note's title and body.
	UpdateNote(ctx context.Context, id int64, req dto.UpdateNoteRequest) (dto.NoteResponse, error)
	// DeleteNote deletes a note and removes its reminders. Notifications
	// keep their title snapshot.
	DeleteNote(ctx context.Context, id int64) error
}
