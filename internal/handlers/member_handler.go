package handlers

import (
	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MemberHandler struct {
	repo repo.MemberRepoInterface
}

func NewMemberHandler(repo repo.MemberRepoInterface) *MemberHandler {
	return &MemberHandler{repo: repo}
}

func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}

	member := models.BoardMember{
		BoardID: req.BoardID,
		UserID:  req.UserID,
		Role:    models.MemberRole(req.Role),
	}
	if err := h.repo.Create(&member); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *MemberHandler) ListByBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	members, err := h.repo.ListByBoard(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(members)
}

func (h *MemberHandler) Update(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if req.Role == nil {
		return badRequest(c, "role is required")
	}

	member, err := h.repo.UpdateRole(boardID, userID, models.MemberRole(*req.Role))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(member)
}

func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	if err := h.repo.Delete(boardID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
