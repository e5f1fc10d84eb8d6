package dto

import "github.com/google/uuid"

type CreateSubtaskRequest struct {
	TaskID       uuid.UUID `json:"task_id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	IsCompleted  bool      `json:"is_completed"`
	DisplayOrder int       `json:"display_order" validate:"gte=0"`
}

type UpdateSubtaskRequest struct {
	Title        *string `json:"title"`
	IsCompleted  *bool   `json:"is_completed"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}
