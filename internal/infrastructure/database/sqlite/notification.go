package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
)

type notificationPersistence struct {
	db *gorm.DB
}

// NewNotificationPersistence creates a new instance of NotificationPersistence.
func NewNotificationPersistence(db *gorm.DB) repository.NotificationPersistence {
	return &notificationPersistence{db: db}
}

// LoadNotifications reads the full persisted notification collection.
func (p *notificationPersistence) LoadNotifications(ctx context.Context) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	if err := p.db.WithContext(ctx).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return notifications, nil
}

// SaveNotifications replaces the persisted collection with the given one
// in a single transaction.
func (p *notificationPersistence) SaveNotifications(ctx context.Context, notifications []*entity.Notification) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Notification{}).Error; err != nil {
			return fmt.Errorf("failed to clear notifications: %w", err)
		}
		if len(notifications) == 0 {
			return nil
		}
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("failed to save notifications: %w", err)
		}
		return nil
	})
}
