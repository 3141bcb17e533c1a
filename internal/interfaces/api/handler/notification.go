package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/service"
	"notedesk/internal/pkg/logger"
)

// NotificationHandler exposes the notification lifecycle over HTTP.
type NotificationHandler struct {
	notifications service.NotificationService
	log           logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications service.NotificationService, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, log: log}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	resp, err := h.notifications.ListNotifications(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notifications.UnreadNotificationCount(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
	}
	if err := h.notifications.MarkNotificationRead(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notifications.MarkAllNotificationsRead(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid notification id"})
	}
	if err := h.notifications.DeleteNotification(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SendTest handles POST /api/notifications/test.
func (h *NotificationHandler) SendTest(c echo.Context) error {
	resp, err := h.notifications.SendTestNotification(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}
