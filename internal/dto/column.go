package dto

import "github.com/google/uuid"

type CreateColumnRequest struct {
	BoardID      uuid.UUID `json:"board_id" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	DisplayOrder int       `json:"display_order" validate:"gte=0"`
	Color        *string   `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateColumnRequest struct {
	Title        *string `json:"title"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	Color        *string `json:"color" validate:"omitempty,hexcolor"`
}

// ReorderColumnsRequest carries the full ordered column-id list for a
// board; positions are reassigned 1..n in list order.
type ReorderColumnsRequest struct {
	BoardID   uuid.UUID   `json:"board_id" validate:"required"`
	ColumnIDs []uuid.UUID `json:"column_ids" validate:"required,min=1"`
}
