package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/store"
	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

type noteService struct {
	notes     repository.NoteRepository
	reminders *store.ReminderStore
	log       logger.Logger
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(notes repository.NoteRepository, reminders *store.ReminderStore, log logger.Logger) NoteService {
	return &noteService{
		notes:     notes,
		reminders: reminders,
		log:       log,
	}
}

// CreateNote persists a new note.
func (s *noteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest) (dto.NoteResponse, error) {
	note := &entity.Note{
		Title: req.Title,
		Body:  req.Body,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		s.log.Error("Failed to create note", err)
		return dto.NoteResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created note %d", note.ID))
	return dto.ToNoteResponse(note), nil
}

// GetNote retrieves a note by its ID.
func (s *noteService) GetNote(ctx context.Context, id int64) (dto.NoteResponse, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NoteResponse{}, appErrors.ErrNoteNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to get note %d", id), err)
		return dto.NoteResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNoteResponse(note), nil
}

// ListNotes retrieves all notes, most recently updated first.
func (s *noteService) ListNotes(ctx context.Context) ([]dto.NoteResponse, error) {
	notes, err := s.notes.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list notes", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNoteResponseList(notes), nil
}

// UpdateNote updates a note's title and body. Existing reminders keep
// their title snapshot from creation time.
func (s *noteService) UpdateNote(ctx context.Context, id int64, req dto.UpdateNoteRequest) (dto.NoteResponse, error) {
	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.NoteResponse{}, appErrors.ErrNoteNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find note %d for update", id), err)
		return dto.NoteResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	note.Title = req.Title
	note.Body = req.Body
	if err := s.notes.Update(ctx, note); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update note %d", id), err)
		return dto.NoteResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToNoteResponse(note), nil
}

// DeleteNote deletes the note and removes its reminders in one pass.
func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	exists, err := s.notes.Exists(ctx, id)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to check note %d before deletion", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if !exists {
		return appErrors.ErrNoteNotFound
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete note %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	if removed := s.reminders.RemoveByNote(id); removed > 0 {
		if err := s.reminders.Save(ctx); err != nil {
			s.log.Error(fmt.Sprintf("Failed to persist reminder removal for note %d", id), err)
			return err
		}
		s.log.Info(fmt.Sprintf("Removed %d reminders attached to deleted note %d", removed, id))
	}
	return nil
}
