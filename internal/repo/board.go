package repo

import (
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardRepo represents the repository for the board model
type BoardRepo struct {
	db *gorm.DB
}

type BoardRepoInterface interface {
	Create(board *models.Board) error
	List() ([]models.Board, error)
	Get(id uuid.UUID) (*models.Board, error)
	Update(id uuid.UUID, fields map[string]any) (*models.Board, error)
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

func NewBoardRepository(db *gorm.DB) BoardRepoInterface {
	return &BoardRepo{db: db}
}

// Create stores the board and seeds its four default columns at
// display_order 1..4.
func (r *BoardRepo) Create(board *models.Board) error {
	board.ID = uuid.New()
	board.CreatedAt = time.Now().UTC()
	board.UpdatedAt = board.CreatedAt

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		for i, title := range models.DefaultColumnTitles {
			col := models.Column{
				ID:           uuid.New(),
				BoardID:      board.ID,
				Title:        title,
				DisplayOrder: i + 1,
				CreatedAt:    time.Now().UTC(),
			}
			if err := tx.Create(&col).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BoardRepo) List() ([]models.Board, error) {
	var boards []models.Board
	err := r.db.Find(&boards).Error
	return boards, err
}

func (r *BoardRepo) Get(id uuid.UUID) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Board")
	}
	return &board, nil
}

func (r *BoardRepo) Update(id uuid.UUID, fields map[string]any) (*models.Board, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		fields["updated_at"] = time.Now().UTC()
		err := r.db.Model(&models.Board{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

// Delete removes the board, its memberships, columns, tasks and all
// task children in one transaction. Absent ids are a no-op.
func (r *BoardRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uuid.UUID
		err := tx.Model(&models.Task{}).Where("board_id = ?", id).Pluck("id", &taskIDs).Error
		if err != nil {
			return err
		}
		if err := deleteTaskChildren(tx, taskIDs); err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Column{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.BoardMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Board{}).Error
	})
}

func (r *BoardRepo) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Board{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// deleteTaskChildren removes subtasks, comments, attachments and
// assignee links for the given task set.
func deleteTaskChildren(tx *gorm.DB, taskIDs []uuid.UUID) error {
	if len(taskIDs) == 0 {
		return nil
	}
	if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Subtask{}).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Attachment{}).Error; err != nil {
		return err
	}
	return tx.Where("task_id IN ?", taskIDs).Delete(&models.TaskAssignee{}).Error
}
