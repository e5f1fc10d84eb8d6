package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment author is optional; system comments carry no user.
type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"task_id"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Content   string     `gorm:"not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`

	Task   Task  `gorm:"foreignKey:TaskID" json:"-"`
	Author *User `gorm:"foreignKey:UserID" json:"-"`
}
