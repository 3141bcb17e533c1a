package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

// NotificationStore is the in-memory notification collection, kept sorted
// newest first. As with ReminderStore, mutators only touch memory and
// callers persist via Save.
type NotificationStore struct {
	mu      sync.RWMutex
	items   []*entity.Notification // newest first
	lastID  int64
	persist repository.NotificationPersistence
	clock   clockwork.Clock
	log     logger.Logger
}

// NewNotificationStore creates an empty store. Call Load before use.
func NewNotificationStore(persist repository.NotificationPersistence, clock clockwork.Clock, log logger.Logger) *NotificationStore {
	return &NotificationStore{
		persist: persist,
		clock:   clock,
		log:     log,
	}
}

// Load reads the persisted collection and sorts it by creation time
// descending.
func (s *NotificationStore) Load(ctx context.Context) error {
	items, err := s.persist.LoadNotifications(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })

	s.mu.Lock()
	s.items = items
	for _, n := range items {
		if n.ID > s.lastID {
			s.lastID = n.ID
		}
	}
	s.mu.Unlock()
	return nil
}

// Save persists a snapshot of the current collection.
func (s *NotificationStore) Save(ctx context.Context) error {
	s.mu.RLock()
	items := make([]*entity.Notification, len(s.items))
	for i, n := range s.items {
		c := *n
		items[i] = &c
	}
	s.mu.RUnlock()
	if err := s.persist.SaveNotifications(ctx, items); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// Create inserts a new unread notification at the front of the collection
// and returns a copy of it. noteID may be nil for informational
// notifications.
func (s *NotificationStore) Create(noteID *int64, noteTitle, message string) entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := &entity.Notification{
		ID:        s.nextID(),
		NoteID:    noteID,
		NoteTitle: noteTitle,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}
	s.items = append([]*entity.Notification{n}, s.items...)
	return *n
}

// nextID mirrors ReminderStore.nextID. Callers must hold the write lock.
func (s *NotificationStore) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// MarkRead flips the unread flag of one notification. The first return
// value reports whether anything changed, the second whether the
// notification exists.
func (s *NotificationStore) MarkRead(id int64) (changed, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.items {
		if n.ID == id {
			return n.MarkRead(), true
		}
	}
	return false, false
}

// MarkAllRead marks every notification read and reports whether at least
// one state actually changed.
func (s *NotificationStore) MarkAllRead() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := false
	for _, n := range s.items {
		if n.MarkRead() {
			changed = true
		}
	}
	return changed
}

// Remove deletes a notification entirely.
func (s *NotificationStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// UnreadCount counts notifications still unread.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// List returns copies of all notifications, newest first.
func (s *NotificationStore) List() []entity.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entity.Notification, len(s.items))
	for i, n := range s.items {
		items[i] = *n
	}
	return items
}
