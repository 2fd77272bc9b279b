package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email         string         `gorm:"uniqueIndex" json:"email"`
	Name          string         `json:"name"`
	Password      string         `json:"-"`
	Role          string         `json:"role"`
	AvatarURL     string         `json:"avatar_url,omitempty"`
	IsVerified    bool           `json:"is_verified"`
	VisibleRoutes datatypes.JSON `gorm:"type:jsonb" json:"visible_routes,omitempty"`

	Timestamp
}

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}
