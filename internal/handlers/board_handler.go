package handlers

import (
	"strings"

	"kanban-api/internal/dto"
	"kanban-api/internal/models"
	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// for simple crud operations a service layer is not required
type BoardHandler struct {
	repo     repo.BoardRepoInterface
	viewRepo repo.ViewRepoInterface
}

func NewBoardHandler(repo repo.BoardRepoInterface, viewRepo repo.ViewRepoInterface) *BoardHandler {
	return &BoardHandler{repo: repo, viewRepo: viewRepo}
}

func (h *BoardHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return respondError(c, err)
	}
	if err := dto.TrimmedRequired("title", req.Title); err != nil {
		return respondError(c, err)
	}

	board := models.Board{
		Title:   strings.TrimSpace(req.Title),
		OwnerID: req.OwnerID,
	}
	if err := h.repo.Create(&board); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

func (h *BoardHandler) List(c *fiber.Ctx) error {
	boards, err := h.repo.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(boards)
}

func (h *BoardHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	board, err := h.repo.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

func (h *BoardHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	var req dto.UpdateBoardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fields := map[string]any{}
	if req.Title != nil {
		if err := dto.TrimmedRequired("title", *req.Title); err != nil {
			return respondError(c, err)
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.OwnerID != nil {
		fields["owner_id"] = *req.OwnerID
	}
	if dto.NullKeys(c.Body(), "owner_id")["owner_id"] {
		fields["owner_id"] = nil
	}

	board, err := h.repo.Update(id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

func (h *BoardHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// View returns the full nested board tree in one response.
func (h *BoardHandler) View(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	view, err := h.viewRepo.GetBoardView(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
