package dto

import (
	"time"

	"notedesk/internal/domain/entity"
)

// NoteResponse is the DTO for sending note information to the UI.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToNoteResponse converts an entity.Note to a NoteResponse DTO.
func ToNoteResponse(n *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToNoteResponseList converts a slice of entity.Note to NoteResponse DTOs.
func ToNoteResponseList(notes []*entity.Note) []NoteResponse {
	list := make([]NoteResponse, len(notes))
	for i, n := range notes {
		list[i] = ToNoteResponse(n)
	}
	return list
}

// CreateNoteRequest is the DTO for creating a new note.
type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateNoteRequest is the DTO for updating an existing note.
type UpdateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
