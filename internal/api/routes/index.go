package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register mounts every resource group on the app. The db handle is
// passed in so tests can mount the same routes over their own store.
func Register(app *fiber.App, db *gorm.DB) {
	registerHealth(app)

	registerUsers(app, db)
	registerBoards(app, db)
	registerColumns(app, db)
	registerTasks(app, db)
	registerSubtasks(app, db)
	registerComments(app, db)
	registerAttachments(app, db)
	registerAssignees(app, db)
	registerMembers(app, db)
}
