package handlers

import (
	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AssigneeHandler struct {
	repo repo.AssigneeRepoInterface
}

func NewAssigneeHandler(repo repo.AssigneeRepoInterface) *AssigneeHandler {
	return &AssigneeHandler{repo: repo}
}

// Create links a user to a task. Assigning the same user twice is a
// client error, not a server fault.
func (h *AssigneeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAssigneeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	assignee := models.TaskAssignee{
		TaskID: req.TaskID,
		UserID: req.UserID,
	}
	if err := h.repo.Create(&assignee); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignee)
}

func (h *AssigneeHandler) ListByTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	assignees, err := h.repo.ListByTask(taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(assignees)
}

func (h *AssigneeHandler) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	if err := h.repo.Delete(taskID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
