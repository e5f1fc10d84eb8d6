package dto

import "github.com/google/uuid"

type CreateBoardRequest struct {
	Title   string     `json:"title" validate:"required"`
	OwnerID *uuid.UUID `json:"owner_id"`
}

type UpdateBoardRequest struct {
	Title   *string    `json:"title"`
	OwnerID *uuid.UUID `json:"owner_id"`
}
