package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerAssignees(app *fiber.App, db *gorm.DB) {
	assigneeRepo := repo.NewAssigneeRepository(db)
	assigneeHandler := handlers.NewAssigneeHandler(assigneeRepo)

	r := app.Group("/assignees")
	r.Post("/", assigneeHandler.Create)
	r.Get("/task/:taskId", assigneeHandler.ListByTask)
	r.Delete("/:taskId/:userId", assigneeHandler.Delete)
}
