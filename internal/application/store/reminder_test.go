package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/domain/constant"
	"notedesk/internal/domain/entity"
	appErrors "notedesk/internal/pkg/errors"
	"notedesk/internal/pkg/logger"
)

type fakeReminderPersistence struct {
	items   []*entity.Reminder
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeReminderPersistence) LoadReminders(context.Context) ([]*entity.Reminder, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]*entity.Reminder, len(f.items))
	for i, r := range f.items {
		c := *r
		out[i] = &c
	}
	return out, nil
}

func (f *fakeReminderPersistence) SaveReminders(_ context.Context, reminders []*entity.Reminder) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.items = make([]*entity.Reminder, len(reminders))
	for i, r := range reminders {
		c := *r
		f.items[i] = &c
	}
	return nil
}

var storeNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newReminderStore(t *testing.T, persist *fakeReminderPersistence) *ReminderStore {
	t.Helper()
	clock := clockwork.NewFakeClockAt(storeNow)
	s := NewReminderStore(persist, clock, logger.Nop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoadPrunesStaleReminders(t *testing.T) {
	persist := &fakeReminderPersistence{items: []*entity.Reminder{
		{ID: 1, NoteID: 1, RemindTime: storeNow.Add(-time.Hour), Dismissed: true},  // dismissed and past
		{ID: 2, NoteID: 1, RemindTime: storeNow.Add(time.Hour), Dismissed: true},   // dismissed but future
		{ID: 3, NoteID: 1, RemindTime: storeNow.Add(-time.Minute)},                 // pending but past
		{ID: 4, NoteID: 1, RemindTime: storeNow.Add(time.Minute)},                  // pending and future
	}}
	s := newReminderStore(t, persist)

	if _, ok := s.Get(4); !ok {
		t.Error("pending future reminder must survive load")
	}
	for _, id := range []int64{1, 2, 3} {
		if _, ok := s.Get(id); ok {
			t.Errorf("reminder %d should have been pruned", id)
		}
	}
	// The pruned collection is written back so stale rows are reclaimed
	// exactly once.
	if len(persist.items) != 1 || persist.items[0].ID != 4 {
		t.Errorf("persisted collection not pruned: %+v", persist.items)
	}
}

func TestLoadNormalizesRecurrenceFields(t *testing.T) {
	persist := &fakeReminderPersistence{items: []*entity.Reminder{
		{ID: 1, NoteID: 1, RemindTime: storeNow.Add(time.Hour)},
	}}
	s := newReminderStore(t, persist)

	r, ok := s.Get(1)
	if !ok {
		t.Fatal("reminder missing after load")
	}
	if r.Recurrence != constant.RecurrenceNone {
		t.Errorf("missing recurrence not normalized: %q", r.Recurrence)
	}
	if r.RecurrenceDays == nil {
		t.Error("missing weekday set not normalized to empty")
	}
}

func TestLoadPropagatesPersistenceFailure(t *testing.T) {
	persist := &fakeReminderPersistence{loadErr: errors.New("disk gone")}
	s := NewReminderStore(persist, clockwork.NewFakeClockAt(storeNow), logger.Nop())
	err := s.Load(context.Background())
	if !errors.Is(err, appErrors.ErrDatabaseOperation) {
		t.Errorf("want ErrDatabaseOperation, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	persist := &fakeReminderPersistence{}
	s := newReminderStore(t, persist)
	days, _ := constant.NewWeekdaySet([]int{1, 3})
	s.Add(7, "groceries", storeNow.Add(time.Hour), constant.RecurrenceWeekly, days)
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	before := len(persist.items)

	// Reloading and saving again must not lose or invent data.
	s2 := newReminderStore(t, persist)
	if err := s2.Save(context.Background()); err != nil {
		t.Fatalf("Save after reload: %v", err)
	}
	if len(persist.items) != before {
		t.Errorf("round trip changed collection size: %d != %d", len(persist.items), before)
	}
	got := persist.items[0]
	if got.NoteID != 7 || got.NoteTitle != "groceries" || got.Recurrence != constant.RecurrenceWeekly {
		t.Errorf("round trip mutated reminder: %+v", got)
	}
	if len(got.RecurrenceDays) != 2 || got.RecurrenceDays[0] != 1 || got.RecurrenceDays[1] != 3 {
		t.Errorf("round trip mutated weekday set: %v", got.RecurrenceDays)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	s := newReminderStore(t, &fakeReminderPersistence{})
	r := s.Add(1, "note", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)

	if !s.Dismiss(r.ID) {
		t.Fatal("first dismiss failed")
	}
	if !s.Dismiss(r.ID) {
		t.Fatal("second dismiss of an existing reminder must not error")
	}
	got, _ := s.Get(r.ID)
	if !got.Dismissed {
		t.Error("reminder not dismissed")
	}
}

func TestRescheduleRefusesDismissed(t *testing.T) {
	s := newReminderStore(t, &fakeReminderPersistence{})
	r := s.Add(1, "note", storeNow.Add(time.Hour), constant.RecurrenceDaily, nil)
	s.Dismiss(r.ID)

	if s.Reschedule(r.ID, storeNow.Add(2*time.Hour)) {
		t.Error("a dismissed reminder must not be re-armed")
	}
	if s.Reschedule(99999, storeNow.Add(2*time.Hour)) {
		t.Error("a missing reminder must not be re-armed")
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	s := newReminderStore(t, &fakeReminderPersistence{})
	// The fake clock never advances, so uniqueness relies on the bump
	// past the last issued ID.
	a := s.Add(1, "a", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	b := s.Add(1, "b", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	c := s.Add(1, "c", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("ids collide: %d %d %d", a.ID, b.ID, c.ID)
	}
}

func TestActiveCountAndFindByNote(t *testing.T) {
	s := newReminderStore(t, &fakeReminderPersistence{})
	later := s.Add(5, "later", storeNow.Add(2*time.Hour), constant.RecurrenceNone, nil)
	sooner := s.Add(5, "sooner", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	other := s.Add(6, "other", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	dismissed := s.Add(5, "gone", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	s.Dismiss(dismissed.ID)

	if got := s.ActiveCount(storeNow); got != 3 {
		t.Errorf("ActiveCount = %d, want 3", got)
	}

	byNote := s.FindByNote(5, storeNow)
	if len(byNote) != 2 {
		t.Fatalf("FindByNote returned %d reminders, want 2", len(byNote))
	}
	if byNote[0].ID != sooner.ID || byNote[1].ID != later.ID {
		t.Errorf("FindByNote not sorted by remind time: %v then %v", byNote[0].ID, byNote[1].ID)
	}
	for _, r := range byNote {
		if r.ID == other.ID || r.ID == dismissed.ID {
			t.Errorf("FindByNote leaked reminder %d", r.ID)
		}
	}
}

func TestRemoveByNote(t *testing.T) {
	s := newReminderStore(t, &fakeReminderPersistence{})
	s.Add(9, "a", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)
	s.Add(9, "b", storeNow.Add(2*time.Hour), constant.RecurrenceNone, nil)
	keep := s.Add(10, "c", storeNow.Add(time.Hour), constant.RecurrenceNone, nil)

	if removed := s.RemoveByNote(9); removed != 2 {
		t.Errorf("RemoveByNote removed %d, want 2", removed)
	}
	if _, ok := s.Get(keep.ID); !ok {
		t.Error("reminder of another note removed")
	}
}
