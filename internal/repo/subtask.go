package repo

import (
	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubtaskRepo struct {
	db *gorm.DB
}

type SubtaskRepoInterface interface {
	Create(subtask *models.Subtask) error
	ListByTask(taskID uuid.UUID) ([]models.Subtask, error)
	Get(id uuid.UUID) (*models.Subtask, error)
	Update(id uuid.UUID, fields map[string]any) (*models.Subtask, error)
	Delete(id uuid.UUID) error
}

func NewSubtaskRepository(db *gorm.DB) SubtaskRepoInterface {
	return &SubtaskRepo{db: db}
}

func (r *SubtaskRepo) Create(subtask *models.Subtask) error {
	var task models.Task
	if err := r.db.First(&task, "id = ?", subtask.TaskID).Error; err != nil {
		return firstOrNotFound(err, "Task")
	}
	subtask.ID = uuid.New()
	return r.db.Create(subtask).Error
}

func (r *SubtaskRepo) ListByTask(taskID uuid.UUID) ([]models.Subtask, error) {
	var subtasks []models.Subtask
	err := r.db.Where("task_id = ?", taskID).Order("display_order").Find(&subtasks).Error
	return subtasks, err
}

func (r *SubtaskRepo) Get(id uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	if err := r.db.First(&subtask, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Subtask")
	}
	return &subtask, nil
}

func (r *SubtaskRepo) Update(id uuid.UUID, fields map[string]any) (*models.Subtask, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.db.Model(&models.Subtask{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

func (r *SubtaskRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Subtask{}).Error
}
