package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubtaskHandler struct {
	repo repo.SubtaskRepoInterface
}

func NewSubtaskHandler(repo repo.SubtaskRepoInterface) *SubtaskHandler {
	return &SubtaskHandler{repo: repo}
}

func (h *SubtaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("title", req.Title); err != nil {
		return respondError(c, err)
	}

	subtask := models.Subtask{
		TaskID:       req.TaskID,
		Title:        strings.TrimSpace(req.Title),
		IsCompleted:  req.IsCompleted,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.repo.Create(&subtask); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(subtask)
}

func (h *SubtaskHandler) ListByTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	subtasks, err := h.repo.ListByTask(taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subtasks)
}

func (h *SubtaskHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}
	subtask, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subtask)
}

func (h *SubtaskHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}
	var req dto.UpdateSubtaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	fields := map[string]any{}
	if req.Title != nil {
		if err := dto.TrimmedRequired("title", *req.Title); err != nil {
			return respondError(c, err)
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.IsCompleted != nil {
		fields["is_completed"] = *req.IsCompleted
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	subtask, err := h.repo.Update(id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subtask)
}

func (h *SubtaskHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subtask id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
