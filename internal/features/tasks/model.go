// ================== internal/features/tasks/model.go ==================
package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Task represents a top-level work item
// @Description Task with status, priority and optional due date
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" example:"507f1f77bcf86cd799439011"`
	Title       string             `bson:"title" json:"title" validate:"required,max=200" example:"Ship release"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=1000" example:"Cut the tag and publish notes"`
	Status      Status             `bson:"status" json:"status" validate:"required,oneof=pending in-progress completed" example:"pending" enums:"pending,in-progress,completed"`
	Priority    Priority           `bson:"priority" json:"priority" validate:"required,oneof=low medium high" example:"medium" enums:"low,medium,high"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty" example:"2025-12-31T00:00:00Z"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt" example:"2025-01-01T00:00:00Z"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt" example:"2025-01-01T00:00:00Z"`
}

// CreateTaskRequest represents task creation data
// @Description Data required to create a new task
type CreateTaskRequest struct {
	Title       string   `json:"title" example:"Ship release"`
	Description string   `json:"description" example:"Cut the tag and publish notes"`
	Status      Status   `json:"status" example:"pending" enums:"pending,in-progress,completed"`
	Priority    Priority `json:"priority" example:"medium" enums:"low,medium,high"`
	DueDate     *string  `json:"dueDate" example:"2025-12-31"`
}

// UpdateTaskRequest represents a partial task update. Absent fields are left
// untouched; an empty dueDate clears it.
// @Description Data for updating an existing task
type UpdateTaskRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=200" example:"Ship release"`
	Description *string   `json:"description" validate:"omitempty,max=1000" example:"Cut the tag and publish notes"`
	Status      *Status   `json:"status" validate:"omitempty,oneof=pending in-progress completed" example:"in-progress" enums:"pending,in-progress,completed"`
	Priority    *Priority `json:"priority" validate:"omitempty,oneof=low medium high" example:"high" enums:"low,medium,high"`
	DueDate     *string   `json:"dueDate" example:"2025-12-31"`
}

// Patch is a validated partial update handed to the store.
type Patch struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil && !p.ClearDueDate
}

// Apply merges the patch into t. Used by stores that update in memory.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.ClearDueDate {
		t.DueDate = nil
	}
}

// ListFilter holds the optional equality filters for listing tasks.
type ListFilter struct {
	Status   Status   `json:"status" form:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority Priority `json:"priority" form:"priority" validate:"omitempty,oneof=low medium high"`
}
