package service

import (
	"context"

	"notedesk/internal/application/dto"
)

// NotificationService defines the notification lifecycle surface consumed
// by the UI layer.
type NotificationService interface {
	// ListNotifications lists all notifications, newest first.
	ListNotifications(ctx context.Context) ([]dto.NotificationResponse, error)
	// MarkNotificationRead marks one notification read. Idempotent.
	MarkNotificationRead(ctx context.Context, id int64) error
	// MarkAllNotificationsRead marks every notification read, persisting
	// only when at least one state actually changed.
	MarkAllNotificationsRead(ctx context.Context) error
	// DeleteNotification deletes a notification entirely.
	DeleteNotification(ctx context.Context, id int64) error
	// UnreadNotificationCount counts notifications still unread.
	UnreadNotificationCount(ctx context.Context) (int, error)
	// SendTestNotification creates an informational notification and
	// pushes it through the native deliverer.
	SendTestNotification(ctx context.Context) (dto.NotificationResponse, error)
}
