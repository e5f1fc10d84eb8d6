package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerAttachments(app *fiber.App, db *gorm.DB) {
	attachmentRepo := repo.NewAttachmentRepository(db)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentRepo)

	r := app.Group("/attachments")
	r.Post("/", attachmentHandler.Create)
	r.Get("/task/:taskId", attachmentHandler.ListByTask)
	r.Get("/:id", attachmentHandler.Get)
	r.Delete("/:id", attachmentHandler.Delete)
}
