package diary

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubDiaryRepository struct {
	created     *entities.FoodEntry
	byID        *entities.FoodEntry
	byIDErr     error
	updated     *entities.FoodEntry
	byDate      []*entities.FoodEntry
	gotDate     time.Time
}

func (stub *stubDiaryRepository) CreateEntry(_ context.Context, entry *entities.FoodEntry) error {
	stub.created = entry
	return nil
}

func (stub *stubDiaryRepository) GetEntryByID(context.Context, string) (*entities.FoodEntry, error) {
	if stub.byIDErr != nil {
		return nil, stub.byIDErr
	}
	return stub.byID, nil
}

func (stub *stubDiaryRepository) UpdateEntry(_ context.Context, entry *entities.FoodEntry) error {
	stub.updated = entry
	return nil
}

func (stub *stubDiaryRepository) GetEntriesByDate(_ context.Context, _ string, day time.Time) ([]*entities.FoodEntry, error) {
	stub.gotDate = day
	return stub.byDate, nil
}

func (stub *stubDiaryRepository) GetEntries(context.Context, string) ([]*entities.FoodEntry, error) {
	return nil, nil
}

func (stub *stubDiaryRepository) GetEntriesAfter(context.Context, string, time.Time) ([]*entities.FoodEntry, error) {
	return nil, nil
}

func (stub *stubDiaryRepository) CountEntries(context.Context, string) (int64, error) {
	return 0, nil
}

func TestAddFoodEntryStampsTodayWithoutFeelings(t *testing.T) {
	repository := &stubDiaryRepository{}
	service := NewDiaryService(repository)
	userID := uuid.New()

	response, err := service.AddFoodEntry(context.Background(), domain.AddFoodEntryRequest{
		MealType:    "Breakfast",
		Description: "Oatmeal with berries",
	}, userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repository.created == nil {
		t.Fatal("expected the entry to be created")
	}
	if repository.created.Feelings != nil {
		t.Fatal("a new entry must start with no feelings recorded")
	}
	if repository.created.UserID != userID {
		t.Fatalf("created entry belongs to %v, want %v", repository.created.UserID, userID)
	}

	wantDay := todayUTC()
	if !repository.created.Date.Equal(wantDay) {
		t.Fatalf("entry stamped %v, want today %v", repository.created.Date, wantDay)
	}
	if hour, minute, second := repository.created.Date.Clock(); hour != 0 || minute != 0 || second != 0 {
		t.Fatalf("entry date must carry no time of day, got %v", repository.created.Date)
	}
	if response.MealType != "Breakfast" || response.Description != "Oatmeal with berries" {
		t.Fatalf("unexpected response: %#v", response)
	}
}

func TestAddFoodEntryRejectsBadUserID(t *testing.T) {
	service := NewDiaryService(&stubDiaryRepository{})

	_, err := service.AddFoodEntry(context.Background(), domain.AddFoodEntryRequest{
		MealType:    "Lunch",
		Description: "Salad",
	}, "not-a-uuid")
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("expected ErrParseUUID, got %v", err)
	}
}

func TestGetTodayEntriesQueriesTodayOnly(t *testing.T) {
	feelings := "satisfied"
	userID := uuid.New()
	repository := &stubDiaryRepository{byDate: []*entities.FoodEntry{
		{ID: uuid.New(), UserID: userID, Date: todayUTC(), MealType: "Breakfast", Description: "Oatmeal"},
		{ID: uuid.New(), UserID: userID, Date: todayUTC(), MealType: "Lunch", Description: "Salmon", Feelings: &feelings},
	}}
	service := NewDiaryService(repository)

	entries, err := service.GetTodayEntries(context.Background(), userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repository.gotDate.Equal(todayUTC()) {
		t.Fatalf("queried day %v, want today %v", repository.gotDate, todayUTC())
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Feelings != nil {
		t.Fatal("first entry must expose no feelings")
	}
	if entries[1].Feelings == nil || *entries[1].Feelings != "satisfied" {
		t.Fatalf("second entry feelings mismatch: %v", entries[1].Feelings)
	}
}

func TestUpdateFeelingsChecksOwnership(t *testing.T) {
	owner := uuid.New()
	entry := &entities.FoodEntry{ID: uuid.New(), UserID: owner, Date: todayUTC(), MealType: "Dinner", Description: "Pizza"}
	repository := &stubDiaryRepository{byID: entry}
	service := NewDiaryService(repository)

	err := service.UpdateFeelings(context.Background(), entry.ID.String(), domain.UpdateFeelingsRequest{Feelings: "bloated"}, uuid.NewString())
	if !errors.Is(err, domain.ErrFoodEntryNotOwned) {
		t.Fatalf("expected ErrFoodEntryNotOwned, got %v", err)
	}
	if repository.updated != nil {
		t.Fatal("a foreign entry must not be updated")
	}

	if err := service.UpdateFeelings(context.Background(), entry.ID.String(), domain.UpdateFeelingsRequest{Feelings: "bloated"}, owner.String()); err != nil {
		t.Fatalf("owner update: unexpected error %v", err)
	}
	if repository.updated == nil || repository.updated.Feelings == nil || *repository.updated.Feelings != "bloated" {
		t.Fatalf("feelings not recorded: %#v", repository.updated)
	}
}

func TestUpdateFeelingsMissingEntry(t *testing.T) {
	service := NewDiaryService(&stubDiaryRepository{byIDErr: gorm.ErrRecordNotFound})

	err := service.UpdateFeelings(context.Background(), uuid.NewString(), domain.UpdateFeelingsRequest{Feelings: "fine"}, uuid.NewString())
	if !errors.Is(err, domain.ErrFoodEntryNotFound) {
		t.Fatalf("expected ErrFoodEntryNotFound, got %v", err)
	}
}
