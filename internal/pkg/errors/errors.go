package errors

import "errors"

// Custom application errors
var (
	ErrInvalidDate          = errors.New("reminder time must be a valid future timestamp")    // Reminder creation with a past or unparseable time
	ErrInvalidRecurrence    = errors.New("invalid recurrence rule or weekday set")            // Unknown recurrence or weekday index outside 0..6
	ErrNoteNotPersisted     = errors.New("note does not exist or has not been saved yet")     // Reminder creation referencing an unsaved note
	ErrNoteNotFound         = errors.New("note not found")                                    // Note lookup miss
	ErrReminderNotFound     = errors.New("reminder not found")                                // Reminder lookup miss
	ErrNotificationNotFound = errors.New("notification not found")                            // Notification lookup miss
	ErrDatabaseOperation    = errors.New("database operation failed")                         // Generic persistence error
	ErrDelivery             = errors.New("native notification delivery failed")               // Desktop notifier rejected the message
	ErrScheduling           = errors.New("scheduling failed")                                 // Tick driver could not be started
	ErrInternalServer       = errors.New("internal server error")                             // Generic internal error
)
