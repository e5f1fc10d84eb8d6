package models

import (
	"github.com/google/uuid"
)

type Subtask struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index" json:"task_id"`
	Title        string    `gorm:"not null" json:"title"`
	IsCompleted  bool      `gorm:"default:false" json:"is_completed"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`

	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}
