package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	ColumnID     uuid.UUID  `json:"column_id" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	Description  *string    `json:"description"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline     *time.Time `json:"deadline"`
	DisplayOrder *int       `json:"display_order" validate:"omitempty,gte=0"`
	Color        *string    `json:"color" validate:"omitempty,hexcolor"`
	CreatedBy    *uuid.UUID `json:"created_by"`
}

type UpdateTaskRequest struct {
	ColumnID     *uuid.UUID `json:"column_id"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline     *time.Time `json:"deadline"`
	DisplayOrder *int       `json:"display_order" validate:"omitempty,gte=0"`
	IsCompleted  *bool      `json:"is_completed"`
	Color        *string    `json:"color" validate:"omitempty,hexcolor"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// ReorderTasksRequest carries the full ordered task-id list for a
// column; positions are reassigned 0..n-1 in list order.
type ReorderTasksRequest struct {
	ColumnID uuid.UUID   `json:"column_id" validate:"required"`
	TaskIDs  []uuid.UUID `json:"task_ids" validate:"required,min=1"`
}
