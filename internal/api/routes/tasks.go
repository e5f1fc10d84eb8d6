package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerTasks(app *fiber.App, db *gorm.DB) {
	taskRepo := repo.NewTaskRepository(db)
	taskHandler := handlers.NewTaskHandler(taskRepo)

	r := app.Group("/tasks")
	r.Post("/", taskHandler.Create)
	r.Post("/reorder", taskHandler.Reorder)
	r.Get("/column/:columnId", taskHandler.ListByColumn)
	r.Get("/:id", taskHandler.Get)
	r.Patch("/:id", taskHandler.Update)
	r.Delete("/:id", taskHandler.Delete)
}
