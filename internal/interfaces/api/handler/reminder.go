package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/service"
	"notedesk/internal/pkg/logger"
)

// ReminderHandler exposes the reminder lifecycle over HTTP.
type ReminderHandler struct {
	reminders service.ReminderService
	log       logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminders service.ReminderService, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, log: log}
}

// Create handles POST /api/reminders.
func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	resp, err := h.reminders.AddReminder(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/reminders. An optional noteId query parameter
// restricts the result to one note's reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	if raw := c.QueryParam("noteId"); raw != "" {
		noteID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid noteId"})
		}
		resp, err := h.reminders.RemindersForNote(c.Request().Context(), noteID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resp)
	}
	resp, err := h.reminders.ListActiveReminders(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Count handles GET /api/reminders/count.
func (h *ReminderHandler) Count(c echo.Context) error {
	count, err := h.reminders.ActiveReminderCount(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Dismiss handles POST /api/reminders/:id/dismiss.
func (h *ReminderHandler) Dismiss(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reminder id"})
	}
	if err := h.reminders.DismissReminder(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Remove handles DELETE /api/reminders/:id.
func (h *ReminderHandler) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid reminder id"})
	}
	if err := h.reminders.RemoveReminder(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
