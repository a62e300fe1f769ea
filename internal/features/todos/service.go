package todos

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasktracker/internal/pkg/validator"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

// Store is the todo persistence the service needs. *Repository satisfies it.
type Store interface {
	Create(ctx context.Context, todo *Todo) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Todo, error)
	Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*Todo, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	List(ctx context.Context, query ListQuery) ([]Todo, error)
}

// TaskLookup reports whether a task exists
type TaskLookup interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type Service struct {
	store Store
	tasks TaskLookup
}

func NewService(store Store, tasks TaskLookup) *Service {
	return &Service{store: store, tasks: tasks}
}

func (s *Service) Create(ctx context.Context, req *CreateTodoRequest) (*Todo, error) {
	taskID, err := validator.ObjectID("taskId", req.TaskID)
	if err != nil {
		return nil, err
	}

	todo := &Todo{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Completed:   req.Completed,
		TaskID:      taskID,
	}

	if err := validator.Struct(todo); err != nil {
		return nil, err
	}

	if err := s.requireTask(ctx, taskID); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, todo); err != nil {
		return nil, apperrors.Storage("Failed to create todo", err)
	}

	return todo, nil
}

// requireTask rejects references to tasks that do not exist
func (s *Service) requireTask(ctx context.Context, taskID primitive.ObjectID) error {
	exists, err := s.tasks.Exists(ctx, taskID)
	if err != nil {
		return apperrors.Storage("Failed to verify task", err)
	}
	if !exists {
		return apperrors.Validationf("Task %s does not exist", taskID.Hex())
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Todo, error) {
	oid, err := validator.ObjectID("todo id", id)
	if err != nil {
		return nil, err
	}

	todo, err := s.store.GetByID(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage("Failed to get todo", err)
	}
	if todo == nil {
		return nil, apperrors.NotFound("Todo not found")
	}
	return todo, nil
}

// ListByTask returns the todos of one task, newest first. taskID is mandatory.
func (s *Service) ListByTask(ctx context.Context, taskID string, completed *bool) ([]Todo, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, apperrors.Validation("taskId is required")
	}
	oid, err := validator.ObjectID("taskId", taskID)
	if err != nil {
		return nil, err
	}

	todos, err := s.store.List(ctx, ListQuery{TaskID: oid, Completed: completed})
	if err != nil {
		return nil, apperrors.Storage("Failed to list todos", err)
	}
	return todos, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateTodoRequest) (*Todo, error) {
	oid, err := validator.ObjectID("todo id", id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.Validation("title is required")
		}
		req.Title = &title
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		req.Description = &desc
	}

	if err := validator.Struct(req); err != nil {
		return nil, err
	}

	patch := Patch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	if req.TaskID != nil {
		taskID, err := validator.ObjectID("taskId", *req.TaskID)
		if err != nil {
			return nil, err
		}
		if err := s.requireTask(ctx, taskID); err != nil {
			return nil, err
		}
		patch.TaskID = &taskID
	}

	if patch.IsEmpty() {
		return nil, apperrors.Validation("No fields to update")
	}

	todo, err := s.store.Update(ctx, oid, patch)
	if err != nil {
		return nil, apperrors.Storage("Failed to update todo", err)
	}
	if todo == nil {
		return nil, apperrors.NotFound("Todo not found")
	}
	return todo, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := validator.ObjectID("todo id", id)
	if err != nil {
		return err
	}

	deleted, err := s.store.Delete(ctx, oid)
	if err != nil {
		return apperrors.Storage("Failed to delete todo", err)
	}
	if deleted == 0 {
		return apperrors.NotFound("Todo not found")
	}
	return nil
}
