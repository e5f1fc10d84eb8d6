package models

import (
	"github.com/google/uuid"
)

// TaskAssignee links a user to a task. Composite key, no independent
// lifecycle.
type TaskAssignee struct {
	TaskID uuid.UUID `gorm:"type:uuid;primaryKey" json:"task_id"`
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`

	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
