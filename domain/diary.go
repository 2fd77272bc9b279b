package domain

import (
	"errors"
	"time"
)

// Meal labels the diary UI offers. The backend stores whatever label it
// receives; these are not enforced.
const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSupper    = "Supper"
	MealParty     = "Party"
)

var (
	MessageSuccessAddFoodEntry     = "food entry added successfully"
	MessageSuccessGetFoodEntries   = "food entries retrieved successfully"
	MessageSuccessUpdateFeelings   = "feelings recorded successfully"

	MessageFailedAddFoodEntry   = "failed to add food entry"
	MessageFailedGetFoodEntries = "failed to retrieve food entries"
	MessageFailedUpdateFeelings = "failed to record feelings"

	ErrFoodEntryNotFound = errors.New("food entry not found")
	ErrFoodEntryNotOwned = errors.New("unauthorized access to food entry")
)

type (
	AddFoodEntryRequest struct {
		MealType    string `json:"meal_type" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	AddFoodEntryResponse struct {
		ID          string    `json:"id"`
		Date        time.Time `json:"date"`
		MealType    string    `json:"meal_type"`
		Description string    `json:"description"`
	}

	UpdateFeelingsRequest struct {
		Feelings string `json:"feelings" validate:"required"`
	}

	FoodEntryResponse struct {
		ID          string    `json:"id"`
		Date        time.Time `json:"date"`
		MealType    string    `json:"meal_type"`
		Description string    `json:"description"`
		Feelings    *string   `json:"feelings,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
