package diary

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DiaryService interface {
		AddFoodEntry(ctx context.Context, req domain.AddFoodEntryRequest, userID string) (domain.AddFoodEntryResponse, error)
		GetTodayEntries(ctx context.Context, userID string) ([]domain.FoodEntryResponse, error)
		UpdateFeelings(ctx context.Context, entryID string, req domain.UpdateFeelingsRequest, userID string) error
	}

	diaryService struct {
		diaryRepository DiaryRepository
	}
)

func NewDiaryService(diaryRepository DiaryRepository) DiaryService {
	return &diaryService{diaryRepository: diaryRepository}
}

// todayUTC is the calendar day every new entry is logged under. Entries carry
// no time-of-day component.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *diaryService) AddFoodEntry(ctx context.Context, req domain.AddFoodEntryRequest, userID string) (domain.AddFoodEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddFoodEntryResponse{}, domain.ErrParseUUID
	}

	entry := &entities.FoodEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		Date:        todayUTC(),
		MealType:    req.MealType,
		Description: req.Description,
		Feelings:    nil,
	}

	if err := s.diaryRepository.CreateEntry(ctx, entry); err != nil {
		return domain.AddFoodEntryResponse{}, err
	}

	return domain.AddFoodEntryResponse{
		ID:          entry.ID.String(),
		Date:        entry.Date,
		MealType:    entry.MealType,
		Description: entry.Description,
	}, nil
}

func (s *diaryService) GetTodayEntries(ctx context.Context, userID string) ([]domain.FoodEntryResponse, error) {
	entries, err := s.diaryRepository.GetEntriesByDate(ctx, userID, todayUTC())
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, domain.FoodEntryResponse{
			ID:          entry.ID.String(),
			Date:        entry.Date,
			MealType:    entry.MealType,
			Description: entry.Description,
			Feelings:    entry.Feelings,
			CreatedAt:   entry.CreatedAt,
		})
	}

	return response, nil
}

func (s *diaryService) UpdateFeelings(ctx context.Context, entryID string, req domain.UpdateFeelingsRequest, userID string) error {
	entry, err := s.diaryRepository.GetEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrFoodEntryNotOwned
	}

	feelings := req.Feelings
	entry.Feelings = &feelings

	return s.diaryRepository.UpdateEntry(ctx, entry)
}
