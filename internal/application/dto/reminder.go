package dto

import (
	"time"

	"notedesk/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the UI.
type ReminderResponse struct {
	ID             int64     `json:"id"`
	NoteID         int64     `json:"noteId"`
	NoteTitle      string    `json:"noteTitle"`
	Datetime       time.Time `json:"datetime"`
	Recurrence     string    `json:"recurrence"`
	RecurrenceDays []int     `json:"recurrenceDays"`
	Dismissed      bool      `json:"dismissed"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
func ToReminderResponse(r entity.Reminder) ReminderResponse {
	days := make([]int, len(r.RecurrenceDays))
	copy(days, r.RecurrenceDays)
	return ReminderResponse{
		ID:             r.ID,
		NoteID:         r.NoteID,
		NoteTitle:      r.NoteTitle,
		Datetime:       r.RemindTime,
		Recurrence:     r.Recurrence.String(),
		RecurrenceDays: days,
		Dismissed:      r.Dismissed,
	}
}

// ToReminderResponseList converts a slice of entity.Reminder to DTOs.
func ToReminderResponseList(reminders []entity.Reminder) []ReminderResponse {
	list := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = ToReminderResponse(r)
	}
	return list
}

// CreateReminderRequest is the DTO for creating a new reminder.
type CreateReminderRequest struct {
	NoteID         int64     `json:"noteId"`
	Datetime       time.Time `json:"datetime"`
	Recurrence     string    `json:"recurrence"`
	RecurrenceDays []int     `json:"recurrenceDays,omitempty"`
}

// CountResponse carries a single counter value (active reminders, unread
// notifications).
type CountResponse struct {
	Count int `json:"count"`
}
