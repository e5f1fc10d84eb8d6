package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerColumns(app *fiber.App, db *gorm.DB) {
	columnRepo := repo.NewColumnRepository(db)
	columnHandler := handlers.NewColumnHandler(columnRepo)

	r := app.Group("/columns")
	r.Post("/", columnHandler.Create)
	r.Post("/reorder", columnHandler.Reorder)
	r.Get("/board/:boardId", columnHandler.ListByBoard)
	r.Get("/:id", columnHandler.Get)
	r.Patch("/:id", columnHandler.Update)
	r.Delete("/:id", columnHandler.Delete)
}
