package entity

import "time"

// Note represents a persisted note. The reminder engine only ever holds a
// weak reference to it by ID; the note body lives and dies with the user.
type Note struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"column:title"`
	Body      string    `gorm:"column:body;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for the Note entity.
func (Note) TableName() string {
	return "notes"
}
