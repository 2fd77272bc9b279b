package diary

import (
	"Ralph-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	DiaryRepository interface {
		CreateEntry(ctx context.Context, entry *entities.FoodEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		UpdateEntry(ctx context.Context, entry *entities.FoodEntry) error
		GetEntriesByDate(ctx context.Context, userID string, day time.Time) ([]*entities.FoodEntry, error)
		GetEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error)
		GetEntriesAfter(ctx context.Context, userID string, after time.Time) ([]*entities.FoodEntry, error)
		CountEntries(ctx context.Context, userID string) (int64, error)
	}

	diaryRepository struct {
		db *gorm.DB
	}
)

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) CreateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *diaryRepository) GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	var entry entities.FoodEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *diaryRepository) UpdateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *diaryRepository) GetEntriesByDate(ctx context.Context, userID string, day time.Time) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntries returns the user's whole diary, oldest day first. Entries on the
// same day keep insertion order.
func (r *diaryRepository) GetEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date asc, created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *diaryRepository) GetEntriesAfter(ctx context.Context, userID string, after time.Time) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date > ?", userID, after).
		Order("date asc, created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *diaryRepository) CountEntries(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
