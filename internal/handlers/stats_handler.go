package handlers

import (
	"time"

	"kanban-api/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StatsHandler struct {
	repo repo.StatsRepoInterface
}

func NewStatsHandler(repo repo.StatsRepoInterface) *StatsHandler {
	return &StatsHandler{repo: repo}
}

func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	stats, err := h.repo.Summary(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) Priorities(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	stats, err := h.repo.Priorities(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) Productivity(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	dateFrom, dateTo, ok := optionalDateRange(c)
	if !ok {
		return badRequest(c, "Invalid date bounds")
	}
	stats, err := h.repo.Productivity(boardID, dateFrom, dateTo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *StatsHandler) ProductivityTimeline(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	dateFrom, err := parseDateParam(c.Query("date_from"))
	if err != nil {
		return badRequest(c, "date_from is required (RFC3339 or YYYY-MM-DD)")
	}
	dateTo, err := parseDateParam(c.Query("date_to"))
	if err != nil {
		return badRequest(c, "date_to is required (RFC3339 or YYYY-MM-DD)")
	}
	step := c.Query("step", "week")
	if step != "day" && step != "week" {
		return badRequest(c, "step must be day or week")
	}

	points, err := h.repo.ProductivityTimeline(boardID, dateFrom, dateTo, step)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(points)
}

func (h *StatsHandler) Workload(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	dateFrom, dateTo, ok := optionalDateRange(c)
	if !ok {
		return badRequest(c, "Invalid date bounds")
	}
	items, err := h.repo.Workload(boardID, dateFrom, dateTo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *StatsHandler) TimeByUser(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	items, err := h.repo.TimeByUser(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *StatsHandler) CompletedTasksByUser(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid board id")
	}
	items, err := h.repo.CompletedTasksByUser(boardID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// parseDateParam accepts a full RFC3339 timestamp or a bare
// YYYY-MM-DD date (midnight UTC).
func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// optionalDateRange reads date_from/date_to query params; absent params
// stay nil, malformed ones reject the request.
func optionalDateRange(c *fiber.Ctx) (*time.Time, *time.Time, bool) {
	var dateFrom, dateTo *time.Time
	if raw := c.Query("date_from"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, nil, false
		}
		dateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, nil, false
		}
		dateTo = &t
	}
	return dateFrom, dateTo, true
}
