package schedule

import (
	"Ralph-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScheduleRepository interface {
		CreateEntry(ctx context.Context, entry *entities.ScheduleEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.ScheduleEntry, error)
		GetEntries(ctx context.Context, userID string) ([]*entities.ScheduleEntry, error)
		GetEntriesByWeekday(ctx context.Context, userID string, weekday int) ([]*entities.ScheduleEntry, error)
		DeleteEntry(ctx context.Context, id string) error
	}

	scheduleRepository struct {
		db *gorm.DB
	}
)

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) CreateEntry(ctx context.Context, entry *entities.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleRepository) GetEntryByID(ctx context.Context, id string) (*entities.ScheduleEntry, error) {
	var entry entities.ScheduleEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) GetEntries(ctx context.Context, userID string) ([]*entities.ScheduleEntry, error) {
	var entries []*entities.ScheduleEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleRepository) GetEntriesByWeekday(ctx context.Context, userID string, weekday int) ([]*entities.ScheduleEntry, error) {
	var entries []*entities.ScheduleEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weekday = ?", userID, weekday).
		Order("start_time asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ScheduleEntry{}).Error
}
