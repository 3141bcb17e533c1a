package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	appErrors "notedesk/internal/pkg/errors"
)

// errorResponse is the uniform error body returned by every handler.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps application sentinels onto HTTP status codes.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErrors.ErrInvalidDate),
		errors.Is(err, appErrors.ErrInvalidRecurrence),
		errors.Is(err, appErrors.ErrNoteNotPersisted):
		status = http.StatusBadRequest
	case errors.Is(err, appErrors.ErrNoteNotFound),
		errors.Is(err, appErrors.ErrReminderNotFound),
		errors.Is(err, appErrors.ErrNotificationNotFound):
		status = http.StatusNotFound
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
