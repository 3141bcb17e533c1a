package entity

import "time"

// Notification is a persisted record of a reminder having fired (or of
// another event worth surfacing, such as a manual test notification).
// NoteID is nil for informational notifications not tied to a note.
type Notification struct {
	ID        int64     `gorm:"primaryKey"`
	NoteID    *int64    `gorm:"column:note_id;index"`
	NoteTitle string    `gorm:"column:note_title"`
	Message   string    `gorm:"column:message;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	Read      bool      `gorm:"column:is_read"`
}

// TableName specifies the table name for the Notification entity.
func (Notification) TableName() string {
	return "notifications"
}

// MarkRead flips the unread flag. Returns true if the state changed.
func (n *Notification) MarkRead() bool {
	if n.Read {
		return false
	}
	n.Read = true
	return true
}
