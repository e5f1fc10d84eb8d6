package models

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"task_id"`
	FileURL    string     `gorm:"not null" json:"file_url"`
	FileName   string     `gorm:"not null" json:"file_name"`
	UploadedBy *uuid.UUID `gorm:"type:uuid" json:"uploaded_by"`
	UploadedAt time.Time  `json:"uploaded_at"`

	Task     Task  `gorm:"foreignKey:TaskID" json:"-"`
	Uploader *User `gorm:"foreignKey:UploadedBy" json:"-"`
}
