package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	repo repo.TaskRepoInterface
}

func NewTaskHandler(repo repo.TaskRepoInterface) *TaskHandler {
	return &TaskHandler{repo: repo}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("title", req.Title); err != nil {
		return respondError(c, err)
	}

	task := models.Task{
		ColumnID:    req.ColumnID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Deadline:    req.Deadline,
		CreatedBy:   req.CreatedBy,
	}
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		task.Priority = &p
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	explicitOrder := req.DisplayOrder != nil
	if explicitOrder {
		task.DisplayOrder = *req.DisplayOrder
	}

	if err := h.repo.Create(&task, explicitOrder); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) ListByColumn(c *fiber.Ctx) error {
	columnID, err := uuid.Parse(c.Params("columnId"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}
	tasks, err := h.repo.ListByColumn(columnID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	task, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	fields := map[string]any{}
	if req.ColumnID != nil {
		fields["column_id"] = *req.ColumnID
	}
	if req.Title != nil {
		if err := dto.TrimmedRequired("title", *req.Title); err != nil {
			return respondError(c, err)
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Priority != nil {
		fields["priority"] = models.Priority(*req.Priority)
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.IsCompleted != nil {
		fields["is_completed"] = *req.IsCompleted
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.StartedAt != nil {
		fields["started_at"] = *req.StartedAt
	}
	if req.CompletedAt != nil {
		fields["completed_at"] = *req.CompletedAt
	}
	// explicit nulls clear; un-completing a task goes through here
	for key := range dto.NullKeys(c.Body(), "description", "priority", "deadline", "started_at", "completed_at") {
		fields[key] = nil
	}

	task, err := h.repo.Update(id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Reorder applies a full explicit ordering of a column's tasks.
func (h *TaskHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	tasks, err := h.repo.Reorder(req.ColumnID, req.TaskIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tasks)
}
