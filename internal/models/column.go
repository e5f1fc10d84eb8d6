package models

import (
	"time"

	"github.com/google/uuid"
)

type Column struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BoardID      uuid.UUID `gorm:"type:uuid;not null;index" json:"board_id"`
	Title        string    `gorm:"not null" json:"title"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`
	Color        *string   `json:"color"`
	CreatedAt    time.Time `json:"created_at"`

	Board Board `gorm:"foreignKey:BoardID" json:"-"`
}
