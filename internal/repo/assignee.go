package repo

import (
	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssigneeRepo struct {
	db *gorm.DB
}

type AssigneeRepoInterface interface {
	Create(assignee *models.TaskAssignee) error
	ListByTask(taskID uuid.UUID) ([]models.TaskAssignee, error)
	Delete(taskID, userID uuid.UUID) error
}

func NewAssigneeRepository(db *gorm.DB) AssigneeRepoInterface {
	return &AssigneeRepo{db: db}
}

// Create links a user to a task. A duplicate link rolls back and
// surfaces gorm.ErrDuplicatedKey for the handler to turn into a client
// error.
func (r *AssigneeRepo) Create(assignee *models.TaskAssignee) error {
	var task models.Task
	if err := r.db.First(&task, "id = ?", assignee.TaskID).Error; err != nil {
		return firstOrNotFound(err, "Task")
	}
	var user models.User
	if err := r.db.First(&user, "id = ?", assignee.UserID).Error; err != nil {
		return firstOrNotFound(err, "User")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(assignee).Error
	})
}

func (r *AssigneeRepo) ListByTask(taskID uuid.UUID) ([]models.TaskAssignee, error) {
	var assignees []models.TaskAssignee
	err := r.db.Where("task_id = ?", taskID).Find(&assignees).Error
	return assignees, err
}

func (r *AssigneeRepo) Delete(taskID, userID uuid.UUID) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignee{}).Error
}
