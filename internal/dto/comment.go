package dto

import "github.com/google/uuid"

type CreateCommentRequest struct {
	TaskID  uuid.UUID  `json:"task_id" validate:"required"`
	UserID  *uuid.UUID `json:"user_id"`
	Content string     `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}
