package repo

import (
	"sort"
	"time"

	"kanban-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Column titles that classify a task's status when completed_at is not
// set. The sets cover the default titles created by this service and
// the legacy labels present in deployed data.
var (
	doneColumnTitles       = map[string]bool{"Done": true, "Готово": true}
	inProgressColumnTitles = map[string]bool{"In Progress": true, "В процессе": true}
)

type SummaryStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Overdue    int `json:"overdue"`
}

type PriorityStats struct {
	Priority  string `json:"priority"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Active    int    `json:"active"`
}

type ProductivityStats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Active         int     `json:"active"`
	CompletedRatio float64 `json:"completed_ratio"`
	ActiveRatio    float64 `json:"active_ratio"`
}

type TimelinePoint struct {
	Date           string  `json:"date"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Active         int     `json:"active"`
	CompletedRatio float64 `json:"completed_ratio"`
	ActiveRatio    float64 `json:"active_ratio"`
}

type WorkloadItem struct {
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Assigned      int       `json:"assigned"`
	WorkloadRatio float64   `json:"workload_ratio"`
}

type UserHours struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Hours  float64   `json:"hours"`
}

type UserCompleted struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Completed int       `json:"completed"`
}

type StatsRepo struct {
	db *gorm.DB
}

type StatsRepoInterface interface {
	Summary(boardID uuid.UUID) (*SummaryStats, error)
	Priorities(boardID uuid.UUID) ([]PriorityStats, error)
	Productivity(boardID uuid.UUID, dateFrom, dateTo *time.Time) (*ProductivityStats, error)
	ProductivityTimeline(boardID uuid.UUID, dateFrom, dateTo time.Time, step string) ([]TimelinePoint, error)
	Workload(boardID uuid.UUID, dateFrom, dateTo *time.Time) ([]WorkloadItem, error)
	TimeByUser(boardID uuid.UUID) ([]UserHours, error)
	CompletedTasksByUser(boardID uuid.UUID) ([]UserCompleted, error)
}

func NewStatsRepository(db *gorm.DB) StatsRepoInterface {
	return &StatsRepo{db: db}
}

// boardColumns verifies board existence and returns its columns. A nil
// slice with nil error means the board exists but has no columns yet;
// callers short-circuit to zero-valued responses.
func (r *StatsRepo) boardColumns(boardID uuid.UUID) ([]models.Column, error) {
	var count int64
	err := r.db.Model(&models.Board{}).Where("id = ?", boardID).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, notFound("Board")
	}
	var columns []models.Column
	err = r.db.Where("board_id = ?", boardID).Find(&columns).Error
	return columns, err
}

func (r *StatsRepo) boardTasks(boardID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("board_id = ?", boardID).Find(&tasks).Error
	return tasks, err
}

func (r *StatsRepo) Summary(boardID uuid.UUID) (*SummaryStats, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	stats := &SummaryStats{}
	if len(columns) == 0 {
		return stats, nil
	}
	titles := make(map[uuid.UUID]string, len(columns))
	for _, c := range columns {
		titles[c.ID] = c.Title
	}

	tasks, err := r.boardTasks(boardID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	for _, t := range tasks {
		stats.Total++
		title := titles[t.ColumnID]
		switch {
		case t.CompletedAt != nil || doneColumnTitles[title]:
			stats.Completed++
		case inProgressColumnTitles[title]:
			stats.InProgress++
		default:
			stats.NotStarted++
		}
		if t.Deadline != nil && t.CompletedAt == nil && t.Deadline.Before(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

func (r *StatsRepo) Priorities(boardID uuid.UUID) ([]PriorityStats, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return []PriorityStats{}, nil
	}

	tasks, err := r.boardTasks(boardID)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	stats := make([]PriorityStats, 0, 4)
	for _, t := range tasks {
		priority := "undefined"
		if t.Priority != nil {
			priority = string(*t.Priority)
		}
		i, ok := index[priority]
		if !ok {
			i = len(stats)
			index[priority] = i
			stats = append(stats, PriorityStats{Priority: priority})
		}
		stats[i].Total++
		if t.CompletedAt != nil {
			stats[i].Completed++
		} else {
			stats[i].Active++
		}
	}
	return stats, nil
}

func (r *StatsRepo) Productivity(boardID uuid.UUID, dateFrom, dateTo *time.Time) (*ProductivityStats, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	stats := &ProductivityStats{}
	if len(columns) == 0 {
		return stats, nil
	}

	tasks, err := r.boardTasks(boardID)
	if err != nil {
		return nil, err
	}

	inRange := func(ts time.Time) bool {
		if dateFrom != nil && ts.Before(*dateFrom) {
			return false
		}
		if dateTo != nil && ts.After(*dateTo) {
			return false
		}
		return true
	}

	for _, t := range tasks {
		if t.CompletedAt != nil {
			if inRange(*t.CompletedAt) {
				stats.Completed++
			}
		} else if inRange(t.CreatedAt) {
			stats.Active++
		}
	}
	stats.Total = stats.Completed + stats.Active
	if stats.Total > 0 {
		stats.CompletedRatio = float64(stats.Completed) / float64(stats.Total)
		stats.ActiveRatio = float64(stats.Active) / float64(stats.Total)
	}
	return stats, nil
}

// ProductivityTimeline reports cumulative-as-of-date counts for each
// bucket between the bounds, at daily or weekly granularity.
func (r *StatsRepo) ProductivityTimeline(boardID uuid.UUID, dateFrom, dateTo time.Time, step string) ([]TimelinePoint, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return []TimelinePoint{}, nil
	}

	tasks, err := r.boardTasks(boardID)
	if err != nil {
		return nil, err
	}

	delta := 7 * 24 * time.Hour
	if step == "day" {
		delta = 24 * time.Hour
	}

	points := []TimelinePoint{}
	for d := dateFrom.UTC(); !d.After(dateTo.UTC()); d = d.Add(delta) {
		point := TimelinePoint{Date: d.Format("2006-01-02")}
		for _, t := range tasks {
			if t.CreatedAt.After(d) {
				continue
			}
			point.Total++
			if t.CompletedAt != nil && !t.CompletedAt.After(d) {
				point.Completed++
			} else {
				point.Active++
			}
		}
		if point.Total > 0 {
			point.CompletedRatio = float64(point.Completed) / float64(point.Total)
			point.ActiveRatio = float64(point.Active) / float64(point.Total)
		}
		points = append(points, point)
	}
	return points, nil
}

// Workload reports, for every user, the count of active assignments on
// this board and its share of the board-wide active total.
func (r *StatsRepo) Workload(boardID uuid.UUID, dateFrom, dateTo *time.Time) ([]WorkloadItem, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return []WorkloadItem{}, nil
	}

	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}

	query := r.db.Where("board_id = ? AND completed_at IS NULL", boardID)
	if dateFrom != nil {
		query = query.Where("created_at >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("created_at <= ?", *dateTo)
	}
	var active []models.Task
	if err := query.Find(&active).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int)
	if err := r.perAssignee(active, func(userID uuid.UUID, _ models.Task) {
		counts[userID]++
	}); err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	items := make([]WorkloadItem, 0, len(users))
	for _, u := range users {
		item := WorkloadItem{UserID: u.ID, Name: u.Name, Assigned: counts[u.ID]}
		if total > 0 {
			item.WorkloadRatio = float64(item.Assigned) / float64(total)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *StatsRepo) TimeByUser(boardID uuid.UUID) ([]UserHours, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return []UserHours{}, nil
	}

	var tasks []models.Task
	err = r.db.
		Where("board_id = ? AND started_at IS NOT NULL AND completed_at IS NOT NULL", boardID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	seconds := make(map[uuid.UUID]float64)
	if err := r.perAssignee(tasks, func(userID uuid.UUID, t models.Task) {
		seconds[userID] += t.CompletedAt.Sub(*t.StartedAt).Seconds()
	}); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(seconds))
	for id := range seconds {
		ids = append(ids, id)
	}
	names, err := r.userNamesByID(ids)
	if err != nil {
		return nil, err
	}

	items := make([]UserHours, 0, len(seconds))
	for userID, secs := range seconds {
		items = append(items, UserHours{UserID: userID, Name: names[userID], Hours: secs / 3600})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Hours > items[j].Hours })
	return items, nil
}

func (r *StatsRepo) CompletedTasksByUser(boardID uuid.UUID) ([]UserCompleted, error) {
	columns, err := r.boardColumns(boardID)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return []UserCompleted{}, nil
	}

	var tasks []models.Task
	err = r.db.Where("board_id = ? AND completed_at IS NOT NULL", boardID).Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int)
	if err := r.perAssignee(tasks, func(userID uuid.UUID, _ models.Task) {
		counts[userID]++
	}); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	names, err := r.userNamesByID(ids)
	if err != nil {
		return nil, err
	}

	items := make([]UserCompleted, 0, len(counts))
	for userID, n := range counts {
		items = append(items, UserCompleted{UserID: userID, Name: names[userID], Completed: n})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Completed > items[j].Completed })
	return items, nil
}

// perAssignee invokes fn once per (assignee, task) pair for the given
// tasks, resolving the links in one query.
func (r *StatsRepo) perAssignee(tasks []models.Task, fn func(uuid.UUID, models.Task)) error {
	if len(tasks) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]models.Task, len(tasks))
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}
	var links []models.TaskAssignee
	if err := r.db.Where("task_id IN ?", ids).Find(&links).Error; err != nil {
		return err
	}
	for _, link := range links {
		fn(link.UserID, byID[link.TaskID])
	}
	return nil
}

func (r *StatsRepo) userNamesByID(ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
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
