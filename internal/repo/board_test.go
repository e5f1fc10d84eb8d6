package repo

import (
	"errors"
	"testing"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBoardCreateSeedsDefaultColumns(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)

	board := models.Board{Title: "Sprint 1"}
	require.NoError(t, boards.Create(&board))

	cols, err := columns.ListByBoard(board.ID)
	require.NoError(t, err)
	require.Len(t, cols, 4)
	for i, col := range cols {
		assert.Equal(t, models.DefaultColumnTitles[i], col.Title)
		assert.Equal(t, i+1, col.DisplayOrder)
	}
}

func TestBoardGetUnknown(t *testing.T) {
	boards := NewBoardRepository(setupDB(t))

	_, err := boards.Get(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.EqualError(t, err, "Board not found")
}

func TestBoardUpdatePartial(t *testing.T) {
	boards := NewBoardRepository(setupDB(t))

	board := models.Board{Title: "Before"}
	require.NoError(t, boards.Create(&board))

	got, err := boards.Update(board.ID, map[string]any{"title": "After"})
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestBoardDeleteCascades(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)
	tasks := NewTaskRepository(db)
	subtasks := NewSubtaskRepository(db)

	board := models.Board{Title: "Doomed"}
	require.NoError(t, boards.Create(&board))

	cols, err := columns.ListByBoard(board.ID)
	require.NoError(t, err)
	task := models.Task{ColumnID: cols[0].ID, Title: "T"}
	require.NoError(t, tasks.Create(&task, false))
	sub := models.Subtask{TaskID: task.ID, Title: "S"}
	require.NoError(t, subtasks.Create(&sub))

	require.NoError(t, boards.Delete(board.ID))

	var colCount, taskCount, subCount int64
	db.Model(&models.Column{}).Where("board_id = ?", board.ID).Count(&colCount)
	db.Model(&models.Task{}).Where("board_id = ?", board.ID).Count(&taskCount)
	db.Model(&models.Subtask{}).Where("task_id = ?", task.ID).Count(&subCount)
	assert.Zero(t, colCount)
	assert.Zero(t, taskCount)
	assert.Zero(t, subCount)

	// deleting again is a no-op
	require.NoError(t, boards.Delete(board.ID))
}
