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

func TestAssigneeDuplicateRollsBack(t *testing.T) {
	db := setupDB(t)
	assignees := NewAssigneeRepository(db)
	tasks := NewTaskRepository(db)
	users := NewUserRepository(db)
	_, cols := boardWithColumns(t, db)

	user := models.User{Name: "Alice"}
	require.NoError(t, users.Create(&user))
	task := models.Task{ColumnID: cols[0].ID, Title: "T"}
	require.NoError(t, tasks.Create(&task, false))

	link := models.TaskAssignee{TaskID: task.ID, UserID: user.ID}
	require.NoError(t, assignees.Create(&link))

	dup := models.TaskAssignee{TaskID: task.ID, UserID: user.ID}
	err := assignees.Create(&dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	listed, err := assignees.ListByTask(task.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestAssigneeCreateChecksParents(t *testing.T) {
	db := setupDB(t)
	assignees := NewAssigneeRepository(db)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	_, cols := boardWithColumns(t, db)

	user := models.User{Name: "Alice"}
	require.NoError(t, users.Create(&user))
	task := models.Task{ColumnID: cols[0].ID, Title: "T"}
	require.NoError(t, tasks.Create(&task, false))

	err := assignees.Create(&models.TaskAssignee{TaskID: task.ID, UserID: uuid.New()})
	assert.EqualError(t, err, "User not found")

	err = assignees.Create(&models.TaskAssignee{TaskID: uuid.New(), UserID: user.ID})
	assert.EqualError(t, err, "Task not found")
}

func TestAssigneeDeleteIdempotent(t *testing.T) {
	db := setupDB(t)
	assignees := NewAssigneeRepository(db)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	_, cols := boardWithColumns(t, db)

	user := models.User{Name: "Alice"}
	require.NoError(t, users.Create(&user))
	task := models.Task{ColumnID: cols[0].ID, Title: "T"}
	require.NoError(t, tasks.Create(&task, false))
	require.NoError(t, assignees.Create(&models.TaskAssignee{TaskID: task.ID, UserID: user.ID}))

	require.NoError(t, assignees.Delete(task.ID, user.ID))
	require.NoError(t, assignees.Delete(task.ID, user.ID))
}
