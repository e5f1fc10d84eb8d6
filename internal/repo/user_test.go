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

func TestUserCreateAndGet(t *testing.T) {
	r := NewUserRepository(setupDB(t))

	user := models.User{Name: "Alice", Email: strptr("alice@example.com")}
	require.NoError(t, r.Create(&user))
	require.NotEqual(t, uuid.Nil, user.ID)

	got, err := r.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, "alice@example.com", *got.Email)
}

func TestUserDuplicateEmail(t *testing.T) {
	r := NewUserRepository(setupDB(t))

	require.NoError(t, r.Create(&models.User{Name: "Alice", Email: strptr("a@example.com")}))
	err := r.Create(&models.User{Name: "Bob", Email: strptr("a@example.com")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserEmptyUpdateIsNoop(t *testing.T) {
	r := NewUserRepository(setupDB(t))

	user := models.User{Name: "Alice", AvatarURL: strptr("https://cdn.example.com/a.png")}
	require.NoError(t, r.Create(&user))

	got, err := r.Update(user.ID, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/a.png", *got.AvatarURL)
}

func TestUserUpdateUnknownID(t *testing.T) {
	r := NewUserRepository(setupDB(t))

	_, err := r.Update(uuid.New(), map[string]any{"name": "X"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserDeleteIdempotent(t *testing.T) {
	r := NewUserRepository(setupDB(t))

	user := models.User{Name: "Alice"}
	require.NoError(t, r.Create(&user))

	require.NoError(t, r.Delete(user.ID))
	_, err := r.Get(user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// second delete must not error
	require.NoError(t, r.Delete(user.ID))
}

func TestUserDeleteRemovesLinks(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	boards := NewBoardRepository(db)

	user := models.User{Name: "Alice"}
	require.NoError(t, users.Create(&user))
	board := models.Board{Title: "Sprint"}
	require.NoError(t, boards.Create(&board))

	members := NewMemberRepository(db)
	require.NoError(t, members.Create(&models.BoardMember{
		BoardID: board.ID, UserID: user.ID, Role: models.RoleEditor,
	}))

	require.NoError(t, users.Delete(user.ID))

	left, err := members.ListByBoard(board.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}
