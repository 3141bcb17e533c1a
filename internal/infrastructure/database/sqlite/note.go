package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
)

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new instance of NoteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// FindByID retrieves a note by its ID.
func (r *noteRepository) FindByID(ctx context.Context, id int64) (*entity.Note, error) {
	var note entity.Note
	if err := r.db.WithContext(ctx).First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("note %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find note %d: %w", id, err)
	}
	return &note, nil
}

// FindAll retrieves all notes, most recently updated first.
func (r *noteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	var notes []*entity.Note
	if err := r.db.WithContext(ctx).Order("updated_at desc").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}
	return notes, nil
}

// Create persists a new note.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// Update updates an existing note.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("failed to update note %d: %w", note.ID, err)
	}
	return nil
}

// Delete deletes a note by its ID.
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Note{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}

// Exists reports whether a note with the given ID is persisted.
func (r *noteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Note{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check note %d: %w", id, err)
	}
	return count > 0, nil
}

// Title returns the current title of the note with the given ID.
func (r *noteRepository) Title(ctx context.Context, id int64) (string, error) {
	var note entity.Note
	if err := r.db.WithContext(ctx).Select("title").First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("note %d not found: %w", id, err)
		}
		return "", fmt.Errorf("failed to read title of note %d: %w", id, err)
	}
	return note.Title, nil
}
