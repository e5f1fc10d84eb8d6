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

func TestColumnCreateRequiresBoard(t *testing.T) {
	columns := NewColumnRepository(setupDB(t))

	err := columns.Create(&models.Column{BoardID: uuid.New(), Title: "Orphan"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.EqualError(t, err, "Board not found")
}

func TestColumnListOrdered(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)

	board := models.Board{Title: "B"}
	require.NoError(t, boards.Create(&board))

	extra := models.Column{BoardID: board.ID, Title: "Blocked", DisplayOrder: 0}
	require.NoError(t, columns.Create(&extra))

	cols, err := columns.ListByBoard(board.ID)
	require.NoError(t, err)
	require.Len(t, cols, 5)
	assert.Equal(t, "Blocked", cols[0].Title)
	for i := 1; i < len(cols); i++ {
		assert.LessOrEqual(t, cols[i-1].DisplayOrder, cols[i].DisplayOrder)
	}
}

func TestColumnReorder(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)

	board := models.Board{Title: "B"}
	require.NoError(t, boards.Create(&board))
	cols, err := columns.ListByBoard(board.ID)
	require.NoError(t, err)

	// reverse the four default columns
	ids := []uuid.UUID{cols[3].ID, cols[2].ID, cols[1].ID, cols[0].ID}
	reordered, err := columns.Reorder(board.ID, ids)
	require.NoError(t, err)
	require.Len(t, reordered, 4)
	for i, id := range ids {
		assert.Equal(t, id, reordered[i].ID)
		assert.Equal(t, i+1, reordered[i].DisplayOrder)
	}
}

func TestColumnReorderForeignColumn(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)

	first := models.Board{Title: "First"}
	second := models.Board{Title: "Second"}
	require.NoError(t, boards.Create(&first))
	require.NoError(t, boards.Create(&second))

	other, err := columns.ListByBoard(second.ID)
	require.NoError(t, err)

	_, err = columns.Reorder(first.ID, []uuid.UUID{other[0].ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestColumnDeleteCascadesTasks(t *testing.T) {
	db := setupDB(t)
	boards := NewBoardRepository(db)
	columns := NewColumnRepository(db)
	tasks := NewTaskRepository(db)

	board := models.Board{Title: "B"}
	require.NoError(t, boards.Create(&board))
	cols, err := columns.ListByBoard(board.ID)
	require.NoError(t, err)

	task := models.Task{ColumnID: cols[0].ID, Title: "T"}
	require.NoError(t, tasks.Create(&task, false))

	require.NoError(t, columns.Delete(cols[0].ID))

	_, err = tasks.Get(task.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
