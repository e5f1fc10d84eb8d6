package routes

import (
	"kanban-api/internal/handlers"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func registerBoards(app *fiber.App, db *gorm.DB) {
	boardRepo := repo.NewBoardRepository(db)
	viewRepo := repo.NewViewRepository(db)
	statsRepo := repo.NewStatsRepository(db)
	boardHandler := handlers.NewBoardHandler(boardRepo, viewRepo)
	statsHandler := handlers.NewStatsHandler(statsRepo)

	r := app.Group("/boards")
	r.Post("/", boardHandler.Create)
	r.Get("/", boardHandler.List)
	r.Get("/:id", boardHandler.Get)
	r.Patch("/:id", boardHandler.Update)
	r.Delete("/:id", boardHandler.Delete)

	r.Get("/:id/view", boardHandler.View)

	r.Get("/:id/stats/summary", statsHandler.Summary)
	r.Get("/:id/stats/priorities", statsHandler.Priorities)
	r.Get("/:id/stats/productivity", statsHandler.Productivity)
	r.Get("/:id/stats/productivity/timeline", statsHandler.ProductivityTimeline)
	r.Get("/:id/stats/workload", statsHandler.Workload)
	r.Get("/:id/stats/time_by_user", statsHandler.TimeByUser)
	r.Get("/:id/stats/completed_tasks_by_user", statsHandler.CompletedTasksByUser)
}
