package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerUsers(app *fiber.App, db *gorm.DB) {
	userRepo := repo.NewUserRepository(db)
	userHandler := handlers.NewUserHandler(userRepo)

	r := app.Group("/users")
	r.Post("/", userHandler.Create)
	r.Get("/", userHandler.List)
	r.Get("/:id", userHandler.Get)
	r.Patch("/:id", userHandler.Update)
	r.Delete("/:id", userHandler.Delete)
}
