package models

import (
	"github.com/google/uuid"
)

// User represents the database model
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     *string   `gorm:"uniqueIndex" json:"email"`
	AvatarURL *string   `json:"avatar_url"`
}
