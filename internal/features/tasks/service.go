package tasks

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasktracker/internal/pkg/logger"
	"github.com/xyz-asif/tasktracker/internal/pkg/validator"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

// Store is the task persistence the service needs. *Repository satisfies it.
type Store interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Task, error)
	Update(ctx context.Context, id primitive.ObjectID, patch Patch) (*Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	List(ctx context.Context, filter ListFilter) ([]Task, error)
}

// TodoRemover deletes the todos owned by a task
type TodoRemover interface {
	DeleteByTask(ctx context.Context, taskID primitive.ObjectID) (int64, error)
}

// Transactor runs fn atomically. Operations inside fn must use the ctx it receives.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	store Store
	todos TodoRemover
	tx    Transactor
}

// NewService wires the task service. tx may be nil when the deployment has
// no transaction support; the cascade then runs as two separate steps.
func NewService(store Store, todos TodoRemover, tx Transactor) *Service {
	return &Service{store: store, todos: todos, tx: tx}
}

func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	task := &Task{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		due, err := validator.Date("dueDate", *req.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	if err := validator.Struct(task); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, apperrors.Storage("Failed to create task", err)
	}

	return task, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Task, error) {
	oid, err := validator.ObjectID("task id", id)
	if err != nil {
		return nil, err
	}

	task, err := s.store.GetByID(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage("Failed to get task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}
	return task, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Task, error) {
	if err := validator.Struct(&filter); err != nil {
		return nil, err
	}

	tasks, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Storage("Failed to list tasks", err)
	}
	return tasks, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateTaskRequest) (*Task, error) {
	oid, err := validator.ObjectID("task id", id)
	if err != nil {
		return nil, err
	}

	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Update(ctx, oid, patch)
	if err != nil {
		return nil, apperrors.Storage("Failed to update task", err)
	}
	if task == nil {
		return nil, apperrors.NotFound("Task not found")
	}
	return task, nil
}

func buildPatch(req *UpdateTaskRequest) (Patch, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return Patch{}, apperrors.Validation("title is required")
		}
		req.Title = &title
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		req.Description = &desc
	}

	if err := validator.Struct(req); err != nil {
		return Patch{}, err
	}

	patch := Patch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if req.DueDate != nil {
		if strings.TrimSpace(*req.DueDate) == "" {
			patch.ClearDueDate = true
		} else {
			due, err := validator.Date("dueDate", *req.DueDate)
			if err != nil {
				return Patch{}, err
			}
			patch.DueDate = &due
		}
	}

	if patch.IsEmpty() {
		return Patch{}, apperrors.Validation("No fields to update")
	}
	return patch, nil
}

// Delete removes the task and then every todo that references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := validator.ObjectID("task id", id)
	if err != nil {
		return err
	}

	if s.tx == nil {
		return s.cascade(ctx, oid)
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.cascade(txCtx, oid)
	})
	if err != nil && apperrors.KindOf(err) == apperrors.KindInternal {
		return apperrors.Storage("Failed to delete task", err)
	}
	return err
}

func (s *Service) cascade(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperrors.Storage("Failed to delete task", err)
	}

	if deleted == 0 {
		// Outside a transaction an earlier delete may have stopped between
		// the two steps; sweep its leftovers so a retry completes the cascade.
		if s.tx == nil {
			if n, err := s.todos.DeleteByTask(ctx, id); err != nil {
				logger.Warn("sweep todos of missing task %s: %v", id.Hex(), err)
			} else if n > 0 {
				logger.Info("removed %d orphaned todos of task %s", n, id.Hex())
			}
		}
		return apperrors.NotFound("Task not found")
	}

	removed, err := s.todos.DeleteByTask(ctx, id)
	if err != nil {
		logger.Error("task %s deleted but its todos were not: %v", id.Hex(), err)
		return apperrors.Storage("Task deleted but its todos could not be removed", err)
	}

	logger.Debug("deleted task %s and %d todos", id.Hex(), removed)
	return nil
}
