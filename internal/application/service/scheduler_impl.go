package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"

	"notedesk/internal/application/store"
	"notedesk/internal/domain/constant"
	"notedesk/internal/domain/entity"
	"notedesk/internal/infrastructure/scheduler"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
	"notedesk/internal/pkg/recurrence"
)

// tickSpec fires at second 0 of every minute. Reminders due inside a tick
// interval fire up to ~60s late, which is acceptable for a personal
// reminder tool.
const tickSpec = "0 * * * * *"

// maxRearmAdvances bounds the catch-up loop for recurring reminders whose
// remind time is far in the past (engine offline across occurrences).
const maxRearmAdvances = 1000

type schedulerService struct {
	driver        *scheduler.Scheduler
	reminders     *store.ReminderStore
	notifications *store.NotificationStore
	deliverer     Deliverer
	clock         clockwork.Clock
	silent        bool
	log           logger.Logger

	mu      sync.Mutex
	entry   cron.EntryID
	started bool
}

// NewSchedulerService creates a new instance of SchedulerService.
func NewSchedulerService(
	driver *scheduler.Scheduler,
	reminders *store.ReminderStore,
	notifications *store.NotificationStore,
	deliverer Deliverer,
	clock clockwork.Clock,
	silent bool,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		driver:        driver,
		reminders:     reminders,
		notifications: notifications,
		deliverer:     deliverer,
		clock:         clock,
		silent:        silent,
		log:           log,
	}
}

// Start registers the periodic tick with the cron driver.
func (s *schedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	id, err := s.driver.AddJob(tickSpec, func() {
		now := s.clock.Now()
		if err := s.Tick(context.Background(), now); err != nil {
			s.log.Error("Tick failed to persist fired reminders", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entry = id
	s.started = true
	s.log.Info(fmt.Sprintf("Reminder tick armed (spec: %q, job ID: %d)", tickSpec, id))
	return nil
}

// Stop cancels the tick job and stops the underlying driver, waiting for
// a tick in flight to finish.
func (s *schedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.driver.RemoveJob(s.entry)
		s.started = false
	}
	s.driver.Stop()
}

// Tick scans for due reminders and fires each one. Per-reminder errors are
// isolated: a delivery failure or an uncomputable recurrence never stops
// the rest of the batch. Both stores are persisted once at the end.
func (s *schedulerService) Tick(ctx context.Context, now time.Time) error {
	due := s.reminders.Due(now)
	if len(due) == 0 {
		return nil
	}
	for _, rem := range due {
		s.fire(rem, now)
	}

	if err := s.reminders.Save(ctx); err != nil {
		return err
	}
	if err := s.notifications.Save(ctx); err != nil {
		return err
	}
	s.log.Info(fmt.Sprintf("Tick fired %d reminders", len(due)))
	return nil
}

// fire converts one due reminder into a notification, pushes it through
// the native deliverer best-effort, and re-arms or dismisses the reminder.
func (s *schedulerService) fire(rem entity.Reminder, now time.Time) {
	message := fmt.Sprintf("Reminder for %q was due at %s.",
		rem.NoteTitle, rem.RemindTime.Format("Mon, 02 Jan 2006 15:04"))

	noteID := rem.NoteID
	s.notifications.Create(&noteID, rem.NoteTitle, message)

	if err := s.deliverer.Deliver(rem.NoteTitle, message, s.silent); err != nil {
		// At-most-once best effort; the persisted notification record is
		// the durable source of truth regardless of native delivery.
		s.log.Error(fmt.Sprintf("%v: reminder %d", appErrors.ErrDelivery, rem.ID), err)
	}

	next, ok := s.nextOccurrence(rem)
	for i := 0; ok && !next.After(now); i++ {
		if i >= maxRearmAdvances {
			ok = false
			break
		}
		rem.RemindTime = next
		next, ok = s.nextOccurrence(rem)
	}

	if !ok {
		s.reminders.Dismiss(rem.ID)
		return
	}
	if !s.reminders.Reschedule(rem.ID, next) {
		s.log.Debug(fmt.Sprintf("Reminder %d changed during tick, skipping rearm", rem.ID))
	}
}

// nextOccurrence picks the calculator for the reminder's recurrence rule.
// Weekly with an empty weekday set falls back to a plain seven-day step.
func (s *schedulerService) nextOccurrence(rem entity.Reminder) (time.Time, bool) {
	switch {
	case rem.Recurrence == constant.RecurrenceWeekly && len(rem.RecurrenceDays) > 0:
		return recurrence.NextWeekly(rem.RemindTime, rem.RecurrenceDays)
	case rem.Recurrence == constant.RecurrenceNone:
		return time.Time{}, false
	default:
		return recurrence.NextSimple(rem.RemindTime, rem.Recurrence)
	}
}
