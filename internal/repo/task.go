package repo

import (
	"fmt"
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo struct {
	db *gorm.DB
}

type TaskRepoInterface interface {
	Create(task *models.Task, explicitOrder bool) error
	ListByColumn(columnID uuid.UUID) ([]models.Task, error)
	Get(id uuid.UUID) (*models.Task, error)
	Update(id uuid.UUID, fields map[string]any) (*models.Task, error)
	Delete(id uuid.UUID) error
	Reorder(columnID uuid.UUID, taskIDs []uuid.UUID) ([]models.Task, error)
}

func NewTaskRepository(db *gorm.DB) TaskRepoInterface {
	return &TaskRepo{db: db}
}

// Create inserts the task into its column. Without an explicit
// position the new task lands at the front: siblings shift up by one
// and the task takes display_order 0.
func (r *TaskRepo) Create(task *models.Task, explicitOrder bool) error {
	var column models.Column
	if err := r.db.First(&column, "id = ?", task.ColumnID).Error; err != nil {
		return firstOrNotFound(err, "Column")
	}

	task.ID = uuid.New()
	task.BoardID = column.BoardID
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	if task.Color == "" {
		task.Color = "#FFF"
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if !explicitOrder {
			err := tx.Model(&models.Task{}).
				Where("column_id = ?", task.ColumnID).
				Update("display_order", gorm.Expr("display_order + 1")).Error
			if err != nil {
				return err
			}
			task.DisplayOrder = 0
		}
		return tx.Create(task).Error
	})
}

func (r *TaskRepo) ListByColumn(columnID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("column_id = ?", columnID).Order("display_order").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) Get(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Task")
	}
	return &task, nil
}

// Update applies the supplied fields only. Moving the task to another
// column re-resolves the denormalized board id; a move without an
// explicit display_order front-inserts into the destination column.
func (r *TaskRepo) Update(id uuid.UUID, fields map[string]any) (*models.Task, error) {
	task, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return task, nil
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if rawID, ok := fields["column_id"]; ok {
			columnID, ok := rawID.(uuid.UUID)
			if !ok {
				return fmt.Errorf("%w: column_id must be a uuid", ErrInvalidInput)
			}
			var column models.Column
			if err := tx.First(&column, "id = ?", columnID).Error; err != nil {
				return firstOrNotFound(err, "Column")
			}
			fields["board_id"] = column.BoardID

			if _, ok := fields["display_order"]; !ok && columnID != task.ColumnID {
				err := tx.Model(&models.Task{}).
					Where("column_id = ?", columnID).
					Update("display_order", gorm.Expr("display_order + 1")).Error
				if err != nil {
					return err
				}
				fields["display_order"] = 0
			}
		}
		fields["updated_at"] = time.Now().UTC()
		return tx.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes the task and its subtasks, comments, attachments and
// assignee links in one transaction. Absent ids are a no-op.
func (r *TaskRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteTaskChildren(tx, []uuid.UUID{id}); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Task{}).Error
	})
}

// Reorder assigns display_order 0..n-1 following the given id list.
// Every id must belong to the column.
func (r *TaskRepo) Reorder(columnID uuid.UUID, taskIDs []uuid.UUID) ([]models.Task, error) {
	var column models.Column
	if err := r.db.First(&column, "id = ?", columnID).Error; err != nil {
		return nil, firstOrNotFound(err, "Column")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range taskIDs {
			res := tx.Model(&models.Task{}).
				Where("id = ? AND column_id = ?", id, columnID).
				Update("display_order", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: task %s does not belong to column", ErrInvalidInput, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListByColumn(columnID)
}
