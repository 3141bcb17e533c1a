package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/application/store"
	"notedesk/internal/domain/constant"
	"notedesk/internal/domain/entity"
	"notedesk/internal/pkg/logger"
)

type fakeReminderPersistence struct {
	items []*entity.Reminder
	saves int
}

func (f *fakeReminderPersistence) LoadReminders(context.Context) ([]*entity.Reminder, error) {
	out := make([]*entity.Reminder, len(f.items))
	for i, r := range f.items {
		c := *r
		out[i] = &c
	}
	return out, nil
}

func (f *fakeReminderPersistence) SaveReminders(_ context.Context, reminders []*entity.Reminder) error {
	f.saves++
	f.items = make([]*entity.Reminder, len(reminders))
	for i, r := range reminders {
		c := *r
		f.items[i] = &c
	}
	return nil
}

type fakeNotificationPersistence struct {
	items []*entity.Notification
	saves int
}

func (f *fakeNotificationPersistence) LoadNotifications(context.Context) ([]*entity.Notification, error) {
	out := make([]*entity.Notification, len(f.items))
	for i, n := range f.items {
		c := *n
		out[i] = &c
	}
	return out, nil
}

func (f *fakeNotificationPersistence) SaveNotifications(_ context.Context, notifications []*entity.Notification) error {
	f.saves++
	f.items = make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		c := *n
		f.items[i] = &c
	}
	return nil
}

type delivery struct {
	title  string
	body   string
	silent bool
}

type fakeDeliverer struct {
	calls []delivery
	err   error
}

func (f *fakeDeliverer) Deliver(title, body string, silent bool) error {
	f.calls = append(f.calls, delivery{title: title, body: body, silent: silent})
	return f.err
}

var tickNow = time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC) // Wednesday

type tickFixture struct {
	reminders       *store.ReminderStore
	notifications   *store.NotificationStore
	reminderPst     *fakeReminderPersistence
	notificationPst *fakeNotificationPersistence
	deliverer       *fakeDeliverer
	scheduler       SchedulerService
	clock           clockwork.FakeClock
}

func newTickFixture(t *testing.T) *tickFixture {
	t.Helper()
	clock := clockwork.NewFakeClockAt(tickNow)
	log := logger.Nop()
	reminderPst := &fakeReminderPersistence{}
	notificationPst := &fakeNotificationPersistence{}
	reminders := store.NewReminderStore(reminderPst, clock, log)
	notifications := store.NewNotificationStore(notificationPst, clock, log)
	if err := reminders.Load(context.Background()); err != nil {
		t.Fatalf("load reminders: %v", err)
	}
	if err := notifications.Load(context.Background()); err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	deliverer := &fakeDeliverer{}
	return &tickFixture{
		reminders:       reminders,
		notifications:   notifications,
		reminderPst:     reminderPst,
		notificationPst: notificationPst,
		deliverer:       deliverer,
		scheduler:       NewSchedulerService(nil, reminders, notifications, deliverer, clock, false, log),
		clock:           clock,
	}
}

// A non-recurring due reminder fires exactly once: one notification, the
// reminder moves to its terminal dismissed state, and the next tick is
// silent.
func TestTickFiresOnceThenDismisses(t *testing.T) {
	f := newTickFixture(t)
	r := f.reminders.Add(3, "pay rent", tickNow.Add(-5*time.Second), constant.RecurrenceNone, nil)

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := len(f.notifications.List()); got != 1 {
		t.Fatalf("got %d notifications, want 1", got)
	}
	got, _ := f.reminders.Get(r.ID)
	if !got.Dismissed {
		t.Error("non-recurring reminder must be dismissed after firing")
	}
	if len(f.deliverer.calls) != 1 {
		t.Errorf("got %d deliveries, want 1", len(f.deliverer.calls))
	}

	if err := f.scheduler.Tick(context.Background(), tickNow.Add(time.Minute)); err != nil {
		t.Fatalf("second Tick: %v", err)
	}
	if got := len(f.notifications.List()); got != 1 {
		t.Errorf("second tick produced another notification, total %d", got)
	}
}

// Two consecutive ticks at the same instant produce a single notification:
// the first fire re-arms or dismisses, so the reminder is no longer due.
func TestTickIsDeterministic(t *testing.T) {
	f := newTickFixture(t)
	days, _ := constant.NewWeekdaySet([]int{int(tickNow.Weekday())})
	f.reminders.Add(3, "standup", tickNow.Add(-time.Second), constant.RecurrenceWeekly, days)

	for i := 0; i < 2; i++ {
		if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
	}
	if got := len(f.notifications.List()); got != 1 {
		t.Errorf("got %d notifications, want 1", got)
	}
}

// A weekly reminder due one second ago with its own weekday in the set
// re-arms exactly one week after its original remind time.
func TestTickWeeklyRearmsOneWeekOut(t *testing.T) {
	f := newTickFixture(t)
	base := tickNow.Add(-time.Second)
	days, _ := constant.NewWeekdaySet([]int{int(base.Weekday())})
	r := f.reminders.Add(3, "water plants", base, constant.RecurrenceWeekly, days)

	if err := f.scheduler.Tick(context.Background(), tickNow.Add(time.Second)); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	got, ok := f.reminders.Get(r.ID)
	if !ok {
		t.Fatal("reminder vanished")
	}
	if got.Dismissed {
		t.Error("recurring reminder must stay pending")
	}
	want := base.AddDate(0, 0, 7)
	if !got.RemindTime.Equal(want) {
		t.Errorf("rearmed to %v, want %v", got.RemindTime, want)
	}
	if got := len(f.notifications.List()); got != 1 {
		t.Errorf("got %d notifications, want 1", got)
	}
}

// A daily reminder several days stale advances past now in a single fire
// instead of replaying a notification per missed day.
func TestTickCatchesUpStaleDailyReminder(t *testing.T) {
	f := newTickFixture(t)
	base := tickNow.Add(-72 * time.Hour)
	r := f.reminders.Add(3, "journal", base, constant.RecurrenceDaily, nil)

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := len(f.notifications.List()); got != 1 {
		t.Errorf("got %d notifications, want 1", got)
	}
	got, _ := f.reminders.Get(r.ID)
	if !got.RemindTime.After(tickNow) {
		t.Errorf("rearmed time %v is not in the future", got.RemindTime)
	}
}

// Weekly recurrence with an empty weekday set falls back to a plain
// seven-day step instead of being dismissed.
func TestTickWeeklyEmptySetFallsBack(t *testing.T) {
	f := newTickFixture(t)
	base := tickNow.Add(-time.Second)
	r := f.reminders.Add(3, "review", base, constant.RecurrenceWeekly, nil)

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	got, _ := f.reminders.Get(r.ID)
	if got.Dismissed {
		t.Fatal("reminder must not be dismissed")
	}
	want := base.AddDate(0, 0, 7)
	if !got.RemindTime.Equal(want) {
		t.Errorf("rearmed to %v, want %v", got.RemindTime, want)
	}
}

// Native delivery failure is logged and swallowed: the notification record
// is still created, the reminder still re-arms, and other reminders in the
// same tick still fire.
func TestTickIsolatesDeliveryFailure(t *testing.T) {
	f := newTickFixture(t)
	f.deliverer.err = errors.New("notification daemon unreachable")
	a := f.reminders.Add(3, "a", tickNow.Add(-time.Second), constant.RecurrenceDaily, nil)
	b := f.reminders.Add(4, "b", tickNow.Add(-time.Second), constant.RecurrenceNone, nil)

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := len(f.notifications.List()); got != 2 {
		t.Errorf("got %d notifications, want 2", got)
	}
	gotA, _ := f.reminders.Get(a.ID)
	if gotA.Dismissed || !gotA.RemindTime.After(tickNow) {
		t.Error("daily reminder not re-armed despite delivery failure")
	}
	gotB, _ := f.reminders.Get(b.ID)
	if !gotB.Dismissed {
		t.Error("one-shot reminder not dismissed despite delivery failure")
	}
}

// All reminders fired in one tick are persisted in a single batch per
// store, not one write per reminder.
func TestTickBatchesPersistence(t *testing.T) {
	f := newTickFixture(t)
	for i := 0; i < 5; i++ {
		f.reminders.Add(int64(i), "note", tickNow.Add(-time.Second), constant.RecurrenceNone, nil)
	}
	reminderSaves := f.reminderPst.saves
	notificationSaves := f.notificationPst.saves

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := f.reminderPst.saves - reminderSaves; got != 1 {
		t.Errorf("tick wrote reminders %d times, want 1", got)
	}
	if got := f.notificationPst.saves - notificationSaves; got != 1 {
		t.Errorf("tick wrote notifications %d times, want 1", got)
	}
}

// A tick with nothing due performs no writes at all.
func TestTickWithoutDueRemindersIsQuiet(t *testing.T) {
	f := newTickFixture(t)
	f.reminders.Add(3, "later", tickNow.Add(time.Hour), constant.RecurrenceNone, nil)
	reminderSaves := f.reminderPst.saves

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if f.reminderPst.saves != reminderSaves {
		t.Error("quiet tick must not persist anything")
	}
	if len(f.deliverer.calls) != 0 {
		t.Error("quiet tick must not deliver anything")
	}
}

// The notification created by a fire references the note and embeds the
// original due time in its message.
func TestTickNotificationContent(t *testing.T) {
	f := newTickFixture(t)
	f.reminders.Add(42, "dentist appointment", tickNow.Add(-time.Second), constant.RecurrenceNone, nil)

	if err := f.scheduler.Tick(context.Background(), tickNow); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	list := f.notifications.List()
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want 1", len(list))
	}
	n := list[0]
	if n.NoteID == nil || *n.NoteID != 42 {
		t.Errorf("notification note reference = %v, want 42", n.NoteID)
	}
	if n.NoteTitle != "dentist appointment" {
		t.Errorf("notification title = %q", n.NoteTitle)
	}
	if n.Message == "" {
		t.Error("notification message must not be empty")
	}
	if n.Read {
		t.Error("notification must start unread")
	}
}
