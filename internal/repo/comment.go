package repo

import (
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

type CommentRepoInterface interface {
	Create(comment *models.Comment) error
	ListByTask(taskID uuid.UUID) ([]models.Comment, error)
	Get(id uuid.UUID) (*models.Comment, error)
	Update(id uuid.UUID, fields map[string]any) (*models.Comment, error)
	Delete(id uuid.UUID) error
}

func NewCommentRepository(db *gorm.DB) CommentRepoInterface {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Create(comment *models.Comment) error {
	var task models.Task
	if err := r.db.First(&task, "id = ?", comment.TaskID).Error; err != nil {
		return firstOrNotFound(err, "Task")
	}
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now().UTC()
	return r.db.Create(comment).Error
}

func (r *CommentRepo) ListByTask(taskID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("task_id = ?", taskID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (r *CommentRepo) Get(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Comment")
	}
	return &comment, nil
}

func (r *CommentRepo) Update(id uuid.UUID, fields map[string]any) (*models.Comment, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.db.Model(&models.Comment{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

func (r *CommentRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Comment{}).Error
}
