package repo

import (
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentRepo struct {
	db *gorm.DB
}

type AttachmentRepoInterface interface {
	Create(attachment *models.Attachment) error
	ListByTask(taskID uuid.UUID) ([]models.Attachment, error)
	Get(id uuid.UUID) (*models.Attachment, error)
	Delete(id uuid.UUID) error
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepoInterface {
	return &AttachmentRepo{db: db}
}

func (r *AttachmentRepo) Create(attachment *models.Attachment) error {
	var task models.Task
	if err := r.db.First(&task, "id = ?", attachment.TaskID).Error; err != nil {
		return firstOrNotFound(err, "Task")
	}
	attachment.ID = uuid.New()
	attachment.UploadedAt = time.Now().UTC()
	return r.db.Create(attachment).Error
}

func (r *AttachmentRepo) ListByTask(taskID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.Where("task_id = ?", taskID).Find(&attachments).Error
	return attachments, err
}

func (r *AttachmentRepo) Get(id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := r.db.First(&attachment, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Attachment")
	}
	return &attachment, nil
}

func (r *AttachmentRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Attachment{}).Error
}
