package dto

import "github.com/google/uuid"

type CreateAssigneeRequest struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
