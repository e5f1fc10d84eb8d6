package routes

import (
	"kanban-api/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func registerHealth(app *fiber.App) {
	healthHandler := handlers.NewHealthHandler()

	app.Get("/health", healthHandler.Live)
	app.Get("/health/db", healthHandler.Database)
}
