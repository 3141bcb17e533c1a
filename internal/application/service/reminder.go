package service

import (
	"context"

	"notedesk/internal/application/dto"
)

// ReminderService defines the reminder lifecycle surface consumed by the
// UI layer.
type ReminderService interface {
	// AddReminder validates and creates a reminder attached to a persisted note.
	AddReminder(ctx context.Context, req dto.CreateReminderRequest) (dto.ReminderResponse, error)
	// DismissReminder marks a reminder so it will never fire again.
	DismissReminder(ctx context.Context, id int64) error
	// RemoveReminder deletes a reminder entirely.
	RemoveReminder(ctx context.Context, id int64) error
	// RemindersForNote lists the active reminders of a note, earliest first.
	RemindersForNote(ctx context.Context, noteID int64) ([]dto.ReminderResponse, error)
	// ListActiveReminders lists all active reminders, earliest first.
	ListActiveReminders(ctx context.Context) ([]dto.ReminderResponse, error)
	// ActiveReminderCount counts pending reminders with a future remind time.
	ActiveReminderCount(ctx context.Context) (int, error)
}
