// ================== internal/features/todos/model.go ==================
package todos

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
)

// Todo represents a sub-item belonging to exactly one task
// @Description Todo item attached to a task
type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id" example:"507f1f77bcf86cd799439012"`
	Title       string             `bson:"title" json:"title" validate:"required,max=200" example:"Write changelog"`
	Description string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=500" example:"Summarise merged PRs"`
	Completed   bool               `bson:"completed" json:"completed" example:"false"`
	TaskID      primitive.ObjectID `bson:"taskId" json:"taskId" example:"507f1f77bcf86cd799439011"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt" example:"2025-01-01T00:00:00Z"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt" example:"2025-01-01T00:00:00Z"`
}

// CreateTodoRequest represents todo creation data
// @Description Data required to create a new todo
type CreateTodoRequest struct {
	Title       string `json:"title" example:"Write changelog"`
	Description string `json:"description" example:"Summarise merged PRs"`
	Completed   bool   `json:"completed" example:"false"`
	TaskID      string `json:"taskId" example:"507f1f77bcf86cd799439011"`
}

// UpdateTodoRequest represents todo update data
// @Description Data for updating an existing todo. Only supplied fields change.
type UpdateTodoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200" example:"Write changelog"`
	Description *string `json:"description" validate:"omitempty,max=500" example:"Summarise merged PRs"`
	Completed   *bool   `json:"completed" example:"true"`
	TaskID      *string `json:"taskId" validate:"omitempty,objectid" example:"507f1f77bcf86cd799439011"`
}

// Patch is a validated partial update handed to the store.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
	TaskID      *primitive.ObjectID
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil && p.TaskID == nil
}

// Apply merges the patch into t. Used by stores that update in memory.
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.TaskID != nil {
		t.TaskID = *p.TaskID
	}
}

// ListQuery selects the todos of one task
type ListQuery struct {
	TaskID    primitive.ObjectID
	Completed *bool
}
