package service

import (
	"context"
	"time"
)

// Deliverer posts a native notification to the host OS. Implemented by
// the desktop notifier in infrastructure; faked in tests.
type Deliverer interface {
	Deliver(title, body string, silent bool) error
}

// SchedulerService drives the due-reminder scan. Start arms the periodic
// tick, Stop tears it down cleanly, and Tick is the scan itself, exposed
// so tests can drive it without real timers.
type SchedulerService interface {
	// Start registers the periodic tick with the cron driver.
	Start() error
	// Stop cancels the tick and stops the underlying driver.
	Stop()
	// Tick fires every due reminder once: a notification is created and
	// delivered for each, and the reminder either re-arms to its next
	// occurrence or is dismissed. Both stores are persisted once per tick.
	Tick(ctx context.Context, now time.Time) error
}
