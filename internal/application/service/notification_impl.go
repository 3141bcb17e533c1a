package service

import (
	"context"
	"fmt"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/store"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

const testNotificationMessage = "This is a test notification from NoteDesk."

type notificationService struct {
	notifications *store.NotificationStore
	deliverer     Deliverer
	silent        bool
	log           logger.Logger
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(
	notifications *store.NotificationStore,
	deliverer Deliverer,
	silent bool,
	log logger.Logger,
) NotificationService {
	return &notificationService{
		notifications: notifications,
		deliverer:     deliverer,
		silent:        silent,
		log:           log,
	}
}

// ListNotifications lists all notifications, newest first.
func (s *notificationService) ListNotifications(_ context.Context) ([]dto.NotificationResponse, error) {
	return dto.ToNotificationResponseList(s.notifications.List()), nil
}

// MarkNotificationRead marks one notification read, persisting only when
// the state actually changed.
func (s *notificationService) MarkNotificationRead(ctx context.Context, id int64) error {
	changed, ok := s.notifications.MarkRead(id)
	if !ok {
		return appErrors.ErrNotificationNotFound
	}
	if !changed {
		return nil
	}
	if err := s.notifications.Save(ctx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist read mark for notification %d", id), err)
		return err
	}
	return nil
}

// MarkAllNotificationsRead marks every notification read.
func (s *notificationService) MarkAllNotificationsRead(ctx context.Context) error {
	if !s.notifications.MarkAllRead() {
		return nil
	}
	if err := s.notifications.Save(ctx); err != nil {
		s.log.Error("Failed to persist bulk read mark", err)
		return err
	}
	return nil
}

// DeleteNotification deletes a notification and persists.
func (s *notificationService) DeleteNotification(ctx context.Context, id int64) error {
	if !s.notifications.Remove(id) {
		return appErrors.ErrNotificationNotFound
	}
	if err := s.notifications.Save(ctx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist deletion of notification %d", id), err)
		return err
	}
	s.log.Info(fmt.Sprintf("Deleted notification %d", id))
	return nil
}

// UnreadNotificationCount counts notifications still unread.
func (s *notificationService) UnreadNotificationCount(_ context.Context) (int, error) {
	return s.notifications.UnreadCount(), nil
}

// SendTestNotification creates an informational notification (no note
// reference) and pushes it through the native deliverer. Delivery failure
// is logged; the persisted record is the source of truth either way.
func (s *notificationService) SendTestNotification(ctx context.Context) (dto.NotificationResponse, error) {
	n := s.notifications.Create(nil, "NoteDesk", testNotificationMessage)
	if err := s.deliverer.Deliver("NoteDesk", testNotificationMessage, s.silent); err != nil {
		s.log.Error("Native delivery of test notification failed", err)
	}
	if err := s.notifications.Save(ctx); err != nil {
		s.log.Error(fmt.Sprintf("Failed to persist test notification %d", n.ID), err)
		return dto.NotificationResponse{}, err
	}
	return dto.ToNotificationResponse(n), nil
}
