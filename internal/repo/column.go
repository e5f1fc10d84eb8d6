package repo

import (
	"fmt"
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColumnRepo struct {
	db *gorm.DB
}

type ColumnRepoInterface interface {
	Create(column *models.Column) error
	ListByBoard(boardID uuid.UUID) ([]models.Column, error)
	Get(id uuid.UUID) (*models.Column, error)
	Update(id uuid.UUID, fields map[string]any) (*models.Column, error)
	Delete(id uuid.UUID) error
	Reorder(boardID uuid.UUID, columnIDs []uuid.UUID) ([]models.Column, error)
}

func NewColumnRepository(db *gorm.DB) ColumnRepoInterface {
	return &ColumnRepo{db: db}
}

func (r *ColumnRepo) Create(column *models.Column) error {
	var board models.Board
	if err := r.db.First(&board, "id = ?", column.BoardID).Error; err != nil {
		return firstOrNotFound(err, "Board")
	}
	column.ID = uuid.New()
	column.CreatedAt = time.Now().UTC()
	return r.db.Create(column).Error
}

func (r *ColumnRepo) ListByBoard(boardID uuid.UUID) ([]models.Column, error) {
	var columns []models.Column
	err := r.db.Where("board_id = ?", boardID).Order("display_order").Find(&columns).Error
	return columns, err
}

func (r *ColumnRepo) Get(id uuid.UUID) (*models.Column, error) {
	var column models.Column
	if err := r.db.First(&column, "id = ?", id).Error; err != nil {
		return nil, firstOrNotFound(err, "Column")
	}
	return &column, nil
}

func (r *ColumnRepo) Update(id uuid.UUID, fields map[string]any) (*models.Column, error) {
	if _, err := r.Get(id); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.db.Model(&models.Column{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

// Delete removes the column, its tasks and all task children in one
// transaction.
func (r *ColumnRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uuid.UUID
		err := tx.Model(&models.Task{}).Where("column_id = ?", id).Pluck("id", &taskIDs).Error
		if err != nil {
			return err
		}
		if err := deleteTaskChildren(tx, taskIDs); err != nil {
			return err
		}
		if err := tx.Where("column_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Column{}).Error
	})
}

// Reorder assigns display_order 1..n following the given id list. Every
// id must belong to the board.
func (r *ColumnRepo) Reorder(boardID uuid.UUID, columnIDs []uuid.UUID) ([]models.Column, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", boardID).Error; err != nil {
		return nil, firstOrNotFound(err, "Board")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range columnIDs {
			res := tx.Model(&models.Column{}).
				Where("id = ? AND board_id = ?", id, boardID).
				Update("display_order", i+1)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: column %s does not belong to board", ErrInvalidInput, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.ListByBoard(boardID)
}
