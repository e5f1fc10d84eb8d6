package dto

import "github.com/google/uuid"

type CreateMemberRequest struct {
	BoardID uuid.UUID `json:"board_id" validate:"required"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Role    string    `json:"role" validate:"required,oneof=viewer editor admin"`
}

type UpdateMemberRequest struct {
	Role *string `json:"role" validate:"omitempty,oneof=viewer editor admin"`
}
