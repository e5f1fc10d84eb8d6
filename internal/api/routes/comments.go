package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerComments(app *fiber.App, db *gorm.DB) {
	commentRepo := repo.NewCommentRepository(db)
	commentHandler := handlers.NewCommentHandler(commentRepo)

	r := app.Group("/comments")
	r.Post("/", commentHandler.Create)
	r.Get("/task/:taskId", commentHandler.ListByTask)
	r.Get("/:id", commentHandler.Get)
	r.Patch("/:id", commentHandler.Update)
	r.Delete("/:id", commentHandler.Delete)
}
