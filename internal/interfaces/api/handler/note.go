package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notedesk/internal/application/dto"
	"notedesk/internal/application/service"
	"notedesk/internal/pkg/logger"
)

// NoteHandler exposes the note catalog over HTTP.
type NoteHandler struct {
	notes service.NoteService
	log   logger.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes service.NoteService, log logger.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, log: log}
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(c echo.Context) error {
	var req dto.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	resp, err := h.notes.CreateNote(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/notes.
func (h *NoteHandler) List(c echo.Context) error {
	resp, err := h.notes.ListNotes(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/notes/:id.
func (h *NoteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid note id"})
	}
	resp, err := h.notes.GetNote(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/notes/:id.
func (h *NoteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid note id"})
	}
	var req dto.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	resp, err := h.notes.UpdateNote(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/notes/:id.
func (h *NoteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid note id"})
	}
	if err := h.notes.DeleteNote(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
