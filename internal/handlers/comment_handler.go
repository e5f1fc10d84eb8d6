package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	repo repo.CommentRepoInterface
}

func NewCommentHandler(repo repo.CommentRepoInterface) *CommentHandler {
	return &CommentHandler{repo: repo}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("content", req.Content); err != nil {
		return respondError(c, err)
	}

	comment := models.Comment{
		TaskID:  req.TaskID,
		UserID:  req.UserID,
		Content: strings.TrimSpace(req.Content),
	}
	if err := h.repo.Create(&comment); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) ListByTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	comments, err := h.repo.ListByTask(taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}
	comment, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}
	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fields := map[string]any{}
	if req.Content != nil {
		if err := dto.TrimmedRequired("content", *req.Content); err != nil {
			return respondError(c, err)
		}
		fields["content"] = strings.TrimSpace(*req.Content)
	}

	comment, err := h.repo.Update(id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
