package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/domain/constant"
	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

// ReminderStore is the in-memory reminder collection, backed by the
// persistence collaborator. Mutators only change memory; callers decide
// when to persist via Save, which lets the scheduler batch one write per
// tick while API operations persist per mutation.
type ReminderStore struct {
	mu      sync.RWMutex
	byID    map[int64]*entity.Reminder
	lastID  int64
	persist repository.ReminderPersistence
	clock   clockwork.Clock
	log     logger.Logger
}

// NewReminderStore creates an empty store. Call Load before use.
func NewReminderStore(persist repository.ReminderPersistence, clock clockwork.Clock, log logger.Logger) *ReminderStore {
	return &ReminderStore{
		byID:    make(map[int64]*entity.Reminder),
		persist: persist,
		clock:   clock,
		log:     log,
	}
}

// Load reads the persisted collection, normalizes missing recurrence
// fields, drops reminders that are dismissed or already in the past, and
// writes the pruned collection back so stale records are reclaimed exactly
// once.
func (s *ReminderStore) Load(ctx context.Context) error {
	items, err := s.persist.LoadReminders(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	now := s.clock.Now()
	pruned := 0

	s.mu.Lock()
	s.byID = make(map[int64]*entity.Reminder, len(items))
	for _, r := range items {
		if r.Recurrence == "" {
			r.Recurrence = constant.RecurrenceNone
		}
		if r.RecurrenceDays == nil {
			r.RecurrenceDays = constant.WeekdaySet{}
		}
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
		if r.Dismissed || r.RemindTime.Before(now) {
			pruned++
			continue
		}
		s.byID[r.ID] = r
	}
	s.mu.Unlock()

	if pruned > 0 {
		s.log.Info(fmt.Sprintf("Pruned %d stale reminders on load", pruned))
	}
	return s.Save(ctx)
}

// Save persists a snapshot of the current collection.
func (s *ReminderStore) Save(ctx context.Context) error {
	items := s.snapshot()
	if err := s.persist.SaveReminders(ctx, items); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *ReminderStore) snapshot() []*entity.Reminder {
	s.mu.RLock()
	items := make([]*entity.Reminder, 0, len(s.byID))
	for _, r := range s.byID {
		c := *r
		items = append(items, &c)
	}
	s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Add inserts a new pending reminder and returns a copy of it. Validation
// of the note reference and the remind time is the caller's job.
func (s *ReminderStore) Add(noteID int64, noteTitle string, at time.Time, rule constant.Recurrence, days constant.WeekdaySet) entity.Reminder {
	if days == nil {
		days = constant.WeekdaySet{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &entity.Reminder{
		ID:             s.nextID(),
		NoteID:         noteID,
		NoteTitle:      noteTitle,
		RemindTime:     at,
		Recurrence:     rule,
		RecurrenceDays: days,
	}
	s.byID[r.ID] = r
	return *r
}

// nextID derives IDs from the creation timestamp, bumping past the last
// issued ID so two reminders created in the same millisecond never collide.
// Callers must hold the write lock.
func (s *ReminderStore) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Get returns a copy of the reminder with the given ID.
func (s *ReminderStore) Get(id int64) (entity.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return entity.Reminder{}, false
	}
	return *r, true
}

// Dismiss moves the reminder to its terminal state. Dismissing an
// already-dismissed reminder is a no-op; false is returned only when the
// reminder does not exist.
func (s *ReminderStore) Dismiss(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return false
	}
	r.Dismiss()
	return true
}

// Remove deletes the reminder entirely.
func (s *ReminderStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	return true
}

// RemoveByNote deletes all reminders attached to a note and returns how
// many were removed.
func (s *ReminderStore) RemoveByNote(noteID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, r := range s.byID {
		if r.NoteID == noteID {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}

// Reschedule advances a pending reminder to its next occurrence. The
// transition is refused when the reminder is gone or already dismissed, so
// a user mutation racing a tick can never resurrect a dismissed reminder.
func (s *ReminderStore) Reschedule(id int64, next time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return false
	}
	return r.Rearm(next)
}

// Due returns copies of all reminders that should fire at the given
// instant, in no particular order.
func (s *ReminderStore) Due(now time.Time) []entity.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var due []entity.Reminder
	for _, r := range s.byID {
		if r.IsDue(now) {
			due = append(due, *r)
		}
	}
	return due
}

// ActiveCount counts pending reminders with a future remind time.
func (s *ReminderStore) ActiveCount(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, r := range s.byID {
		if r.IsActive(now) {
			count++
		}
	}
	return count
}

// FindByNote returns the active reminders for a note, earliest first.
func (s *ReminderStore) FindByNote(noteID int64, now time.Time) []entity.Reminder {
	s.mu.RLock()
	items := make([]entity.Reminder, 0)
	for _, r := range s.byID {
		if r.NoteID == noteID && r.IsActive(now) {
			items = append(items, *r)
		}
	}
	s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].RemindTime.Before(items[j].RemindTime) })
	return items
}

// ListActive returns all active reminders, earliest first.
func (s *ReminderStore) ListActive(now time.Time) []entity.Reminder {
	s.mu.RLock()
	items := make([]entity.Reminder, 0)
	for _, r := range s.byID {
		if r.IsActive(now) {
			items = append(items, *r)
		}
	}
	s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].RemindTime.Before(items[j].RemindTime) })
	return items
}
