package entities

import (
	"github.com/google/uuid"
)

type ScheduleEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"index" json:"user_id"`
	Weekday   int       `json:"weekday"` // 0 = Monday .. 6 = Sunday
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Activity  string    `json:"activity"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
