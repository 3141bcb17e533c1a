package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"notedesk/internal/domain/entity"
	"notedesk/internal/domain/repository"
)

type reminderPersistence struct {
	db *gorm.DB
}

// NewReminderPersistence creates a new instance of ReminderPersistence.
func NewReminderPersistence(db *gorm.DB) repository.ReminderPersistence {
	return &reminderPersistence{db: db}
}

// LoadReminders reads the full persisted reminder collection.
func (p *reminderPersistence) LoadReminders(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := p.db.WithContext(ctx).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}
	return reminders, nil
}

// SaveReminders replaces the persisted collection with the given one in a
// single transaction.
func (p *reminderPersistence) SaveReminders(ctx context.Context, reminders []*entity.Reminder) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.Reminder{}).Error; err != nil {
			return fmt.Errorf("failed to clear reminders: %w", err)
		}
		if len(reminders) == 0 {
			return nil
		}
		if err := tx.Create(&reminders).Error; err != nil {
			return fmt.Errorf("failed to save reminders: %w", err)
		}
		return nil
	})
}
