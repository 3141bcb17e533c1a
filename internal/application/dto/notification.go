package dto

import (
	"time"

	"notedesk/internal/domain/entity"
)

// NotificationResponse is the DTO for sending notification information to
// the UI. NoteID is null for informational notifications.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	NoteID    *int64    `json:"noteId"`
	NoteTitle string    `json:"noteTitle"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
	Read      bool      `json:"read"`
}

// ToNotificationResponse converts an entity.Notification to a DTO.
func ToNotificationResponse(n entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		NoteID:    n.NoteID,
		NoteTitle: n.NoteTitle,
		Message:   n.Message,
		Time:      n.CreatedAt,
		Read:      n.Read,
	}
}

// ToNotificationResponseList converts a slice of entity.Notification to DTOs.
func ToNotificationResponseList(notifications []entity.Notification) []NotificationResponse {
	list := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		list[i] = ToNotificationResponse(n)
	}
	return list
}
