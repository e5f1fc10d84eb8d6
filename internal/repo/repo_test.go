package repo

import (
	"testing"

	"kanban-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory store with the full schema. A single
// connection keeps every query on the same in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Column{},
		&models.Task{},
		&models.Subtask{},
		&models.Comment{},
		&models.Attachment{},
		&models.TaskAssignee{},
		&models.BoardMember{},
	)
	require.NoError(t, err)

	return db
}

func strptr(s string) *string { return &s }
