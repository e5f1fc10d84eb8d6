package dto

import "github.com/google/uuid"

type CreateAttachmentRequest struct {
	TaskID     uuid.UUID  `json:"task_id" validate:"required"`
	FileURL    string     `json:"file_url" validate:"required,url"`
	FileName   string     `json:"file_name" validate:"required"`
	UploadedBy *uuid.UUID `json:"uploaded_by"`
}
