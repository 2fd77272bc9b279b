package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AiAnalysis struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID      `gorm:"uniqueIndex" json:"user_id"`
	Recommended    datatypes.JSON `gorm:"type:jsonb" json:"recommended"`
	NotRecommended datatypes.JSON `gorm:"type:jsonb" json:"not_recommended"`
	AvoidProducts  datatypes.JSON `gorm:"type:jsonb" json:"avoid_products"`
	LastEntryDate  time.Time      `json:"last_entry_date"` // date of the newest entry incorporated

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
