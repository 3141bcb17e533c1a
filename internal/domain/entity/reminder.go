package entity

import (
	"time"

	"notedesk/internal/domain/constant"
)

// Reminder represents a scheduled future trigger attached to a note.
// NoteTitle is a snapshot taken at creation time so the reminder stays
// displayable even if the note is later renamed or deleted.
type Reminder struct {
	ID             int64               `gorm:"primaryKey"`
	NoteID         int64               `gorm:"column:note_id;index"`
	NoteTitle      string              `gorm:"column:note_title"`
	RemindTime     time.Time           `gorm:"column:remind_time"`
	Recurrence     constant.Recurrence `gorm:"column:recurrence"`
	RecurrenceDays constant.WeekdaySet `gorm:"column:recurrence_days;type:text"`
	Dismissed      bool                `gorm:"column:dismissed"`
}

// TableName specifies the table name for the Reminder entity.
func (Reminder) TableName() string {
	return "reminders"
}

// State returns the lifecycle state derived from the dismissed flag.
func (r *Reminder) State() constant.ReminderState {
	if r.Dismissed {
		return constant.StateDismissed
	}
	return constant.StatePending
}

// IsDue reports whether the reminder should fire at the given instant.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.Dismissed && !r.RemindTime.After(now)
}

// IsActive reports whether the reminder is pending with a future remind time.
func (r *Reminder) IsActive(now time.Time) bool {
	return !r.Dismissed && r.RemindTime.After(now)
}

// Dismiss transitions the reminder to the terminal dismissed state.
// Dismissing an already-dismissed reminder is a no-op.
func (r *Reminder) Dismiss() {
	r.Dismissed = true
}

// Rearm advances a pending reminder to its next occurrence. A dismissed
// reminder cannot be re-armed; the transition is refused and false is
// returned.
func (r *Reminder) Rearm(next time.Time) bool {
	if r.Dismissed {
		return false
	}
	r.RemindTime = next
	return true
}
