package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerSubtasks(app *fiber.App, db *gorm.DB) {
	subtaskRepo := repo.NewSubtaskRepository(db)
	subtaskHandler := handlers.NewSubtaskHandler(subtaskRepo)

	r := app.Group("/subtasks")
	r.Post("/", subtaskHandler.Create)
	r.Get("/task/:taskId", subtaskHandler.ListByTask)
	r.Get("/:id", subtaskHandler.Get)
	r.Patch("/:id", subtaskHandler.Update)
	r.Delete("/:id", subtaskHandler.Delete)
}
