package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kanban-api/internal/api"
	"kanban-api/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory store
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Column{},
		&models.Task{},
		&models.Subtask{},
		&models.Comment{},
		&models.Attachment{},
		&models.TaskAssignee{},
		&models.BoardMember{},
	))

	app := api.NewServer()
	Register(app, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createBoard(t *testing.T, app *fiber.App, title string) models.Board {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/boards", fiber.Map{"title": title})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var board models.Board
	decode(t, resp, &board)
	return board
}

func TestHealthEndpoints(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])

	// no postgres connection in this process
	resp = doJSON(t, app, http.MethodGet, "/health/db", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCreateBoardSeedsDefaultColumns(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Sprint 12")

	resp := doJSON(t, app, http.MethodGet, "/boards/"+board.ID.String()+"/view", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view struct {
		Columns []struct {
			Title        string `json:"title"`
			DisplayOrder int    `json:"display_order"`
			Tasks        []any  `json:"tasks"`
		} `json:"columns"`
		Members []any `json:"members"`
	}
	decode(t, resp, &view)
	require.Len(t, view.Columns, 4)
	for i, title := range models.DefaultColumnTitles {
		assert.Equal(t, title, view.Columns[i].Title)
		assert.Equal(t, i+1, view.Columns[i].DisplayOrder)
		assert.NotNil(t, view.Columns[i].Tasks)
	}
	assert.NotNil(t, view.Members)
}

func TestBoardNotFoundResponses(t *testing.T) {
	app := setupApp(t)
	missing := uuid.New().String()

	for _, path := range []string{
		"/boards/" + missing,
		"/boards/" + missing + "/view",
		"/boards/" + missing + "/stats/summary",
		"/boards/" + missing + "/stats/workload",
	} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		var body map[string]string
		decode(t, resp, &body)
		assert.Equal(t, "Board not found", body["error"], path)
	}
}

func TestBoardValidation(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/boards", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/boards", fiber.Map{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/boards/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmptyBoardPatchIsNoOp(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Keep me")

	resp := doJSON(t, app, http.MethodPatch, "/boards/"+board.ID.String(), fiber.Map{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Board
	decode(t, resp, &updated)
	assert.Equal(t, "Keep me", updated.Title)
}

func TestBoardDeleteIsIdempotent(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Throwaway")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, http.MethodDelete, "/boards/"+board.ID.String(), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("delete #%d", i+1))
	}

	resp := doJSON(t, app, http.MethodGet, "/boards/"+board.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func firstColumnID(t *testing.T, app *fiber.App, board models.Board) uuid.UUID {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/columns/board/"+board.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cols []models.Column
	decode(t, resp, &cols)
	require.NotEmpty(t, cols)
	return cols[0].ID
}

func TestTaskCreateAndValidation(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Tasks")
	columnID := firstColumnID(t, app, board)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"column_id": columnID, "title": "Write docs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task models.Task
	decode(t, resp, &task)
	assert.Equal(t, 0, task.DisplayOrder)
	assert.Equal(t, board.ID, task.BoardID)
	assert.Equal(t, "#FFF", task.Color)

	cases := []fiber.Map{
		{"column_id": columnID, "title": "x", "priority": "urgent"},
		{"column_id": columnID, "title": "x", "color": "red"},
		{"column_id": columnID, "title": "   "},
		{"column_id": columnID, "title": "x", "display_order": -1},
	}
	for _, payload := range cases {
		resp := doJSON(t, app, http.MethodPost, "/tasks", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	// unknown column is a 404, not a constraint error
	resp = doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"column_id": uuid.New(), "title": "orphan",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPatchExplicitNullClearsFields(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Nullable")
	columnID := firstColumnID(t, app, board)

	resp := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"column_id": columnID, "title": "Flaky fix",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task models.Task
	decode(t, resp, &task)

	resp = doJSON(t, app, http.MethodPatch, "/tasks/"+task.ID.String(), fiber.Map{
		"completed_at": "2026-08-30T10:00:00Z",
		"deadline":     "2026-08-28T00:00:00Z",
		"priority":     "high",
		"description":  "regressed in prod",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &task)
	require.NotNil(t, task.CompletedAt)
	require.NotNil(t, task.Priority)

	// an explicit null clears the field; an omitted one stays put
	resp = doJSON(t, app, http.MethodPatch, "/tasks/"+task.ID.String(), fiber.Map{
		"completed_at": nil,
		"deadline":     nil,
		"priority":     nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &task)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.Deadline)
	assert.Nil(t, task.Priority)
	require.NotNil(t, task.Description)
	assert.Equal(t, "regressed in prod", *task.Description)
	assert.Equal(t, "Flaky fix", task.Title)
}

func TestBoardPatchClearsOwner(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"name": "Owner"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var owner models.User
	decode(t, resp, &owner)

	resp = doJSON(t, app, http.MethodPost, "/boards", fiber.Map{
		"title": "Handover", "owner_id": owner.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var board models.Board
	decode(t, resp, &board)
	require.NotNil(t, board.OwnerID)

	resp = doJSON(t, app, http.MethodPatch, "/boards/"+board.ID.String(), fiber.Map{
		"owner_id": nil,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &board)
	assert.Nil(t, board.OwnerID)
	assert.Equal(t, "Handover", board.Title)
}

func TestDuplicateAssigneeRejected(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Team")
	columnID := firstColumnID(t, app, board)

	resp := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"name": "Alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user models.User
	decode(t, resp, &user)

	resp = doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{
		"column_id": columnID, "title": "Pair on this",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task models.Task
	decode(t, resp, &task)

	link := fiber.Map{"task_id": task.ID, "user_id": user.ID}
	resp = doJSON(t, app, http.MethodPost, "/assignees", link)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/assignees", link)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTimelineRequiresBounds(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Timeline")

	resp := doJSON(t, app, http.MethodGet, "/boards/"+board.ID.String()+"/stats/productivity/timeline", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	path := "/boards/" + board.ID.String() +
		"/stats/productivity/timeline?date_from=2026-01-01T00:00:00Z&date_to=2026-01-03T00:00:00Z&step=day"
	resp = doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var points []map[string]any
	decode(t, resp, &points)
	assert.Len(t, points, 3)

	resp = doJSON(t, app, http.MethodGet, path+"x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatsAcceptDateOnlyBounds(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Dates")

	path := "/boards/" + board.ID.String() +
		"/stats/productivity/timeline?date_from=2026-01-01&date_to=2026-01-03&step=day"
	resp := doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var points []map[string]any
	decode(t, resp, &points)
	assert.Len(t, points, 3)

	resp = doJSON(t, app, http.MethodGet,
		"/boards/"+board.ID.String()+"/stats/productivity?date_from=2026-01-01", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet,
		"/boards/"+board.ID.String()+"/stats/workload?date_to=2026/01/01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestColumnReorder(t *testing.T) {
	app := setupApp(t)
	board := createBoard(t, app, "Reorder")

	resp := doJSON(t, app, http.MethodGet, "/columns/board/"+board.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cols []models.Column
	decode(t, resp, &cols)
	require.Len(t, cols, 4)

	reversed := make([]uuid.UUID, 0, len(cols))
	for i := len(cols) - 1; i >= 0; i-- {
		reversed = append(reversed, cols[i].ID)
	}
	resp = doJSON(t, app, http.MethodPost, "/columns/reorder", fiber.Map{
		"board_id":   board.ID,
		"column_ids": reversed,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var after []models.Column
	decode(t, resp, &after)
	require.Len(t, after, 4)
	assert.Equal(t, cols[3].ID, after[0].ID)
	assert.Equal(t, 1, after[0].DisplayOrder)

	// an id from another board poisons the whole request
	other := createBoard(t, app, "Other")
	foreign := firstColumnID(t, app, other)
	resp = doJSON(t, app, http.MethodPost, "/columns/reorder", fiber.Map{
		"board_id":   board.ID,
		"column_ids": []uuid.UUID{foreign},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
