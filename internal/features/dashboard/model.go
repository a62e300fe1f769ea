package dashboard

import "github.com/xyz-asif/tasktracker/internal/features/tasks"

// RecentTaskLimit is how many tasks the dashboard lists as recent
const RecentTaskLimit = 5

// Stats is the dashboard payload
// @Description Aggregate counts across tasks and todos
type Stats struct {
	Tasks       TaskStats    `json:"tasks"`
	Todos       TodoStats    `json:"todos"`
	RecentTasks []tasks.Task `json:"recentTasks"`
}

type TaskStats struct {
	Total      int64         `json:"total" example:"12"`
	Pending    int64         `json:"pending" example:"5"`
	InProgress int64         `json:"inProgress" example:"4"`
	Completed  int64         `json:"completed" example:"3"`
	ByPriority PriorityStats `json:"byPriority"`
}

// PriorityStats counts tasks that are not completed, per priority
type PriorityStats struct {
	High   int64 `json:"high" example:"2"`
	Medium int64 `json:"medium" example:"5"`
	Low    int64 `json:"low" example:"2"`
}

type TodoStats struct {
	Total     int64 `json:"total" example:"30"`
	Completed int64 `json:"completed" example:"18"`
	Pending   int64 `json:"pending" example:"12"`
}
