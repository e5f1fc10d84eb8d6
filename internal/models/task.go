package models

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task belongs to a column; BoardID is denormalized from the column so
// board-wide queries skip the join.
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ColumnID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"column_id"`
	BoardID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"board_id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  *string    `json:"description"`
	Priority     *Priority  `json:"priority"`
	Deadline     *time.Time `json:"deadline"`
	DisplayOrder int        `gorm:"not null" json:"display_order"`
	IsCompleted  bool       `gorm:"default:false" json:"is_completed"`
	Color        string     `gorm:"default:'#FFF'" json:"color"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Column  Column `gorm:"foreignKey:ColumnID" json:"-"`
	Creator *User  `gorm:"foreignKey:CreatedBy" json:"-"`
}
