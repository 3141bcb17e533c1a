package repository

import (
	"context"

	"notedesk/internal/domain/entity"
)

// ReminderPersistence defines the durable storage collaborator for the
// reminder collection. The engine owns the in-memory collection and writes
// it back as a whole; storage never mutates individual rows on its own.
type ReminderPersistence interface {
	// LoadReminders reads the full persisted reminder collection.
	LoadReminders(ctx context.Context) ([]*entity.Reminder, error)
	// SaveReminders replaces the persisted collection with the given one.
	SaveReminders(ctx context.Context, reminders []*entity.Reminder) error
}
