package constant

// ReminderState defines the lifecycle states of a reminder.
type ReminderState int

const (
	// StatePending represents a reminder still armed to fire in the future.
	StatePending ReminderState = iota
	// StateDismissed represents a reminder that will never fire again.
	StateDismissed
)

func (s ReminderState) Int() int {
	return int(s)
}

func (s ReminderState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}
