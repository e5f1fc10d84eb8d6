package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AttachmentHandler struct {
	repo repo.AttachmentRepoInterface
}

func NewAttachmentHandler(repo repo.AttachmentRepoInterface) *AttachmentHandler {
	return &AttachmentHandler{repo: repo}
}

func (h *AttachmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAttachmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("file_name", req.FileName); err != nil {
		return respondError(c, err)
	}

	attachment := models.Attachment{
		TaskID:     req.TaskID,
		FileURL:    req.FileURL,
		FileName:   strings.TrimSpace(req.FileName),
		UploadedBy: req.UploadedBy,
	}
	if err := h.repo.Create(&attachment); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attachment)
}

func (h *AttachmentHandler) ListByTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return badRequest(c, "Invalid task id")
	}
	attachments, err := h.repo.ListByTask(taskID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(attachments)
}

func (h *AttachmentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid attachment id")
	}
	attachment, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(attachment)
}

func (h *AttachmentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid attachment id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
