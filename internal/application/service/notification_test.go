package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"notedesk/internal/application/store"
	"notedesk/internal/pkg/logger"
)

func newNotificationService(t *testing.T) (NotificationService, *fakeNotificationPersistence, *fakeDeliverer) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	log := logger.Nop()
	persist := &fakeNotificationPersistence{}
	notifications := store.NewNotificationStore(persist, clock, log)
	if err := notifications.Load(context.Background()); err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	deliverer := &fakeDeliverer{}
	return NewNotificationService(notifications, deliverer, true, log), persist, deliverer
}

func TestSendTestNotification(t *testing.T) {
	svc, persist, deliverer := newNotificationService(t)

	resp, err := svc.SendTestNotification(context.Background())
	if err != nil {
		t.Fatalf("SendTestNotification: %v", err)
	}
	if resp.NoteID != nil {
		t.Error("test notification must not reference a note")
	}
	if resp.Read {
		t.Error("test notification must start unread")
	}
	if len(deliverer.calls) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(deliverer.calls))
	}
	if !deliverer.calls[0].silent {
		t.Error("silent flag not forwarded to the deliverer")
	}
	if len(persist.items) != 1 {
		t.Errorf("test notification not persisted, collection size %d", len(persist.items))
	}
}

func TestMarkReadPersistsOnlyOnChange(t *testing.T) {
	svc, persist, _ := newNotificationService(t)
	resp, err := svc.SendTestNotification(context.Background())
	if err != nil {
		t.Fatalf("SendTestNotification: %v", err)
	}
	saves := persist.saves

	if err := svc.MarkNotificationRead(context.Background(), resp.ID); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if persist.saves != saves+1 {
		t.Errorf("first mark should persist once, saves went %d -> %d", saves, persist.saves)
	}
	if err := svc.MarkNotificationRead(context.Background(), resp.ID); err != nil {
		t.Fatalf("second MarkNotificationRead: %v", err)
	}
	if persist.saves != saves+1 {
		t.Error("marking an already-read notification must not persist again")
	}
}

func TestMarkAllReadPersistsOnlyOnChange(t *testing.T) {
	svc, persist, _ := newNotificationService(t)
	if _, err := svc.SendTestNotification(context.Background()); err != nil {
		t.Fatalf("SendTestNotification: %v", err)
	}
	if _, err := svc.SendTestNotification(context.Background()); err != nil {
		t.Fatalf("SendTestNotification: %v", err)
	}
	saves := persist.saves

	if err := svc.MarkAllNotificationsRead(context.Background()); err != nil {
		t.Fatalf("MarkAllNotificationsRead: %v", err)
	}
	if persist.saves != saves+1 {
		t.Error("bulk mark with changes should persist once")
	}
	if err := svc.MarkAllNotificationsRead(context.Background()); err != nil {
		t.Fatalf("second MarkAllNotificationsRead: %v", err)
	}
	if persist.saves != saves+1 {
		t.Error("bulk mark without changes must not persist")
	}

	count, err := svc.UnreadNotificationCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadNotificationCount: %v", err)
	}
	if count != 0 {
		t.Errorf("unread count = %d, want 0", count)
	}
}

func TestDeleteNotification(t *testing.T) {
	svc, persist, _ := newNotificationService(t)
	resp, err := svc.SendTestNotification(context.Background())
	if err != nil {
		t.Fatalf("SendTestNotification: %v", err)
	}

	if err := svc.DeleteNotification(context.Background(), resp.ID); err != nil {
		t.Fatalf("DeleteNotification: %v", err)
	}
	if len(persist.items) != 0 {
		t.Errorf("notification still persisted after deletion: %d", len(persist.items))
	}
	list, err := svc.ListNotifications(context.Background())
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("notification still listed after deletion: %d", len(list))
	}
}
