package repository

import (
	"context"

	"notedesk/internal/domain/entity"
)

// NotificationPersistence defines the durable storage collaborator for the
// notification collection, mirroring ReminderPersistence.
type NotificationPersistence interface {
	// LoadNotifications reads the full persisted notification collection.
	LoadNotifications(ctx context.Context) ([]*entity.Notification, error)
	// SaveNotifications replaces the persisted collection with the given one.
	SaveNotifications(ctx context.Context, notifications []*entity.Notification) error
}
