package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index:idx_food_entries_user_date" json:"user_id"`
	Date        time.Time `gorm:"index:idx_food_entries_user_date" json:"date"` // UTC midnight, no time of day
	MealType    string    `json:"meal_type"`
	Description string    `json:"description"`
	Feelings    *string   `json:"feelings,omitempty"` // nil until the user records it

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
