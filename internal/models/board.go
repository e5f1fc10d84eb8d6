package models

import (
	"time"

	"github.com/google/uuid"
)

// Board is the top-level container of columns. OwnerID is optional so
// that boards survive the removal of their owning user.
type Board struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	OwnerID   *uuid.UUID `gorm:"type:uuid" json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// DefaultColumnTitles are auto-created for every new board, at
// display_order 1..4.
var DefaultColumnTitles = []string{"To Do", "In Progress", "Review", "Done"}
