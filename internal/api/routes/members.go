package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerMembers(app *fiber.App, db *gorm.DB) {
	memberRepo := repo.NewMemberRepository(db)
	memberHandler := handlers.NewMemberHandler(memberRepo)

	r := app.Group("/members")
	r.Post("/", memberHandler.Create)
	r.Get("/:boardId", memberHandler.ListByBoard)
	r.Patch("/:boardId/:userId", memberHandler.Update)
	r.Delete("/:boardId/:userId", memberHandler.Delete)
}
