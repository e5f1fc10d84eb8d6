package repo

import (
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardView is the denormalized read of a board's full content tree.
type BoardView struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	OwnerID   *uuid.UUID   `json:"owner_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Members   []MemberView `json:"members"`
	Columns   []ColumnView `json:"columns"`
}

type MemberView struct {
	UserID uuid.UUID         `json:"user_id"`
	Name   string            `json:"name"`
	Role   models.MemberRole `json:"role"`
}

type ColumnView struct {
	models.Column
	Tasks []TaskView `json:"tasks"`
}

type TaskView struct {
	models.Task
	Subtasks  []models.Subtask `json:"subtasks"`
	Comments  []models.Comment `json:"comments"`
	Assignees []AssigneeView   `json:"assignees"`
}

type AssigneeView struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

type ViewRepo struct {
	db *gorm.DB
}

type ViewRepoInterface interface {
	GetBoardView(boardID uuid.UUID) (*BoardView, error)
}

func NewViewRepository(db *gorm.DB) ViewRepoInterface {
	return &ViewRepo{db: db}
}

// GetBoardView assembles the nested board tree in a fixed number of
// queries: every task-child fetch is keyed by the board's task-id set,
// never per task.
func (r *ViewRepo) GetBoardView(boardID uuid.UUID) (*BoardView, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", boardID).Error; err != nil {
		return nil, firstOrNotFound(err, "Board")
	}

	var members []models.BoardMember
	if err := r.db.Where("board_id = ?", boardID).Find(&members).Error; err != nil {
		return nil, err
	}

	var columns []models.Column
	err := r.db.Where("board_id = ?", boardID).Order("display_order").Find(&columns).Error
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	err = r.db.Where("board_id = ?", boardID).Order("display_order").Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	taskIDs := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	var subtasks []models.Subtask
	var comments []models.Comment
	var assignees []models.TaskAssignee
	if len(taskIDs) > 0 {
		err = r.db.Where("task_id IN ?", taskIDs).Order("display_order").Find(&subtasks).Error
		if err != nil {
			return nil, err
		}
		err = r.db.Where("task_id IN ?", taskIDs).Order("created_at").Find(&comments).Error
		if err != nil {
			return nil, err
		}
		if err := r.db.Where("task_id IN ?", taskIDs).Find(&assignees).Error; err != nil {
			return nil, err
		}
	}

	userNames, err := r.userNames(members, assignees)
	if err != nil {
		return nil, err
	}

	subtasksByTask := make(map[uuid.UUID][]models.Subtask)
	for _, s := range subtasks {
		subtasksByTask[s.TaskID] = append(subtasksByTask[s.TaskID], s)
	}
	commentsByTask := make(map[uuid.UUID][]models.Comment)
	for _, c := range comments {
		commentsByTask[c.TaskID] = append(commentsByTask[c.TaskID], c)
	}
	assigneesByTask := make(map[uuid.UUID][]AssigneeView)
	for _, a := range assignees {
		assigneesByTask[a.TaskID] = append(assigneesByTask[a.TaskID], AssigneeView{
			UserID: a.UserID,
			Name:   userNames[a.UserID],
		})
	}

	tasksByColumn := make(map[uuid.UUID][]TaskView)
	for _, t := range tasks {
		view := TaskView{
			Task:      t,
			Subtasks:  orEmpty(subtasksByTask[t.ID]),
			Comments:  orEmpty(commentsByTask[t.ID]),
			Assignees: orEmpty(assigneesByTask[t.ID]),
		}
		tasksByColumn[t.ColumnID] = append(tasksByColumn[t.ColumnID], view)
	}

	columnViews := make([]ColumnView, 0, len(columns))
	for _, c := range columns {
		columnViews = append(columnViews, ColumnView{
			Column: c,
			Tasks:  orEmpty(tasksByColumn[c.ID]),
		})
	}

	memberViews := make([]MemberView, 0, len(members))
	for _, m := range members {
		memberViews = append(memberViews, MemberView{
			UserID: m.UserID,
			Name:   userNames[m.UserID],
			Role:   m.Role,
		})
	}

	return &BoardView{
		ID:        board.ID,
		Title:     board.Title,
		OwnerID:   board.OwnerID,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
		Members:   memberViews,
		Columns:   columnViews,
	}, nil
}

// userNames resolves the display names for every user referenced by
// members or assignee links in a single query.
func (r *ViewRepo) userNames(members []models.BoardMember, assignees []models.TaskAssignee) (map[uuid.UUID]string, error) {
	idSet := make(map[uuid.UUID]struct{})
	for _, m := range members {
		idSet[m.UserID] = struct{}{}
	}
	for _, a := range assignees {
		idSet[a.UserID] = struct{}{}
	}
	names := make(map[uuid.UUID]string, len(idSet))
	if len(idSet) == 0 {
		return names, nil
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// orEmpty keeps JSON arrays as [] instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
