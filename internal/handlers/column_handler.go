package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ColumnHandler struct {
	repo repo.ColumnRepoInterface
}

func NewColumnHandler(repo repo.ColumnRepoInterface) *ColumnHandler {
	return &ColumnHandler{repo: repo}
}

func (h *ColumnHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateColumnRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("title", req.Title); err != nil {
		return respondError(c, err)
	}

	column := models.Column{
		BoardID:      req.BoardID,
		Title:        strings.TrimSpace(req.Title),
		DisplayOrder: req.DisplayOrder,
		Color:        req.Color,
	}
	if err := h.repo.Create(&column); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(column)
}

func (h *ColumnHandler) ListByBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	columns, err := h.repo.ListByBoard(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(columns)
}

func (h *ColumnHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}
	column, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(column)
}

func (h *ColumnHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}
	var req dto.UpdateColumnRequest
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
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if dto.NullKeys(c.Body(), "color")["color"] {
		fields["color"] = nil
	}

	column, err := h.repo.Update(id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(column)
}

func (h *ColumnHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid column id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Reorder applies a full explicit ordering of a board's columns.
func (h *ColumnHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderColumnsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	columns, err := h.repo.Reorder(req.BoardID, req.ColumnIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(columns)
}
