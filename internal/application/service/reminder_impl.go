package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/store"
	"notedesk/internal/domain/constant"
	"notedesk/internal/domain/repository"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

type reminderService struct {
	reminders *store.ReminderStore
	notes     repository.NoteRepository
	clock     clockwork.Clock
	log       logger.Logger
}

// NewReminderService creates a new instance of ReminderService.
func NewReminderService(
	reminders *store.ReminderStore,
	notes repository.NoteRepository,
	clock clockwork.Clock,
	log logger.Logger,
) ReminderService {
	return &reminderService{
		reminders: reminders,
		notes:     notes,
		clock:     clock,
		log:       log,
	}
}

// AddReminder validates the request and inserts a new pending reminder.
// The note must already be persisted and the remind time strictly in the
// future. The note title is snapshotted at creation time.
func (s *reminderService) AddReminder(ctx context.Context, req dto.CreateReminderRequest) (dto.ReminderResponse, error) {
	rule, ok := constant.ParseRecurrence(req.Recurrence)
	if !ok {
		return dto.ReminderResponse{}, fmt.Errorf("%w: unknown recurrence %q", appErrors.ErrInvalidRecurrence, req.Recurrence)
	}
	days, ok := constant.NewWeekdaySet(req.RecurrenceDays)
	if !ok {
		return dto.ReminderResponse{}, fmt.Errorf("%w: weekday indices must be in 0..6", appErrors.ErrInvalidRecurrence)
	}

	now := s.clock.Now()
	if req.Datetime.IsZero() || !req.Datetime.After(now) {
		return dto.ReminderResponse{}, appErrors.ErrInvalidDate
	}

	exists, err := s.notes.Exists(ctx, req.NoteID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to check note %d while adding reminder", req.NoteID), err)
		return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if !exists {
		return dto.ReminderResponse{}, appErrors.ErrNoteNotPersisted
	}
	title, err := s.notes.Title(ctx, req.NoteID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to read title of note %d while adding reminder", req.NoteID), err)
		return dto.ReminderResponse{}, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	reminder := s.reminders.Add(req.NoteID, title, req.Datetime, rule, days)
	if err := s.reminders.Save(ctx); err != nil {
		// In-memory state is kept on save failure; the reminder stays
		// visible in-session and the next successful save catches up.
		s.log.Error(fmt.Sprintf("Failed to persist reminder %d after creation", reminder.ID), err)
		return dto.ReminderResponse{}, err
	}

	s.log.Info(fmt.Sprintf("Created reminder %d for note %d at %v (recurrence: %s)",
		reminder.ID, reminder.NoteID, reminder.RemindTime, reminder.Recurrence))
	return dto.ToReminderResponse(reminder), nil
}

// DismissReminder marks the reminder dismissed and persists. Dismissing an
// already-dismissed reminder succeeds without further effect.
func (s *reminderService) DismissReminder(ctx context.Context, id int64) error {
	if !s.reminders.Dismiss(id) {
		return appErrors.ErrReminderNotFound
	}
	if err := s.reminders.Save(ctx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist dismissal of reminder %d", id), err)
		return err
	}
	s.log.Info(fmt.Sprintf("Dismissed reminder %d", id))
	return nil
}

// RemoveReminder deletes the reminder and persists.
func (s *reminderService) RemoveReminder(ctx context.Context, id int64) error {
	if !s.reminders.Remove(id) {
		return appErrors.ErrReminderNotFound
	}
	if err := s.reminders.Save(ctx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist removal of reminder %d", id), err)
		return err
	}
	s.log.Info(fmt.Sprintf("Removed reminder %d", id))
	return nil
}

// RemindersForNote lists the active reminders of a note, earliest first.
func (s *reminderService) RemindersForNote(_ context.Context, noteID int64) ([]dto.ReminderResponse, error) {
	return dto.ToReminderResponseList(s.reminders.FindByNote(noteID, s.clock.Now())), nil
}

// ListActiveReminders lists all active reminders, earliest first.
func (s *reminderService) ListActiveReminders(_ context.Context) ([]dto.ReminderResponse, error) {
	return dto.ToReminderResponseList(s.reminders.ListActive(s.clock.Now())), nil
}

// ActiveReminderCount counts pending reminders with a future remind time.
func (s *reminderService) ActiveReminderCount(_ context.Context) (int, error) {
	return s.reminders.ActiveCount(s.clock.Now()), nil
}
