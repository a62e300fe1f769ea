package todos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasktracker/internal/database/memory"
	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	"github.com/xyz-asif/tasktracker/internal/features/todos"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

type brokenLookup struct{}

func (brokenLookup) Exists(context.Context, primitive.ObjectID) (bool, error) {
	return false, errors.New("connection reset")
}

func setup(t *testing.T) (*todos.Service, *tasks.Task) {
	t.Helper()
	store := memory.New()
	task := &tasks.Task{Title: "parent", Status: tasks.StatusPending, Priority: tasks.PriorityMedium}
	require.NoError(t, store.Tasks().Create(context.Background(), task))
	return todos.NewService(store.Todos(), store.Tasks()), task
}

func TestCreate(t *testing.T) {
	svc, task := setup(t)
	ctx := context.Background()

	todo, err := svc.Create(ctx, &todos.CreateTodoRequest{Title: " Buy milk ", TaskID: task.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, task.ID, todo.TaskID)
	assert.False(t, todo.Completed)
	assert.False(t, todo.CreatedAt.IsZero())

	tests := []struct {
		name string
		req  todos.CreateTodoRequest
		msg  string
	}{
		{"missing title", todos.CreateTodoRequest{TaskID: task.ID.Hex()}, "title is required"},
		{"missing task", todos.CreateTodoRequest{Title: "x"}, "taskId is required"},
		{"malformed task", todos.CreateTodoRequest{Title: "x", TaskID: "nope"}, "Invalid taskId"},
		{"unknown task", todos.CreateTodoRequest{Title: "x", TaskID: "507f1f77bcf86cd799439011"}, "Task 507f1f77bcf86cd799439011 does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
			assert.Equal(t, tt.msg, apperrors.MessageOf(err))
		})
	}
}

func TestCreateLookupFailureIsStorageError(t *testing.T) {
	svc := todos.NewService(memory.New().Todos(), brokenLookup{})

	_, err := svc.Create(context.Background(), &todos.CreateTodoRequest{Title: "x", TaskID: primitive.NewObjectID().Hex()})
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestListByTaskFiltersCompleted(t *testing.T) {
	svc, task := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &todos.CreateTodoRequest{Title: "open", TaskID: task.ID.Hex()})
	require.NoError(t, err)
	done, err := svc.Create(ctx, &todos.CreateTodoRequest{Title: "done", TaskID: task.ID.Hex(), Completed: true})
	require.NoError(t, err)

	all, err := svc.ListByTask(ctx, task.ID.Hex(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	yes := true
	completed, err := svc.ListByTask(ctx, task.ID.Hex(), &yes)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)

	other, err := svc.ListByTask(ctx, primitive.NewObjectID().Hex(), nil)
	require.NoError(t, err)
	assert.NotNil(t, other)
	assert.Empty(t, other)

	_, err = svc.ListByTask(ctx, " ", nil)
	assert.Equal(t, "taskId is required", apperrors.MessageOf(err))
}

func TestUpdate(t *testing.T) {
	svc, task := setup(t)
	ctx := context.Background()

	todo, err := svc.Create(ctx, &todos.CreateTodoRequest{Title: "step", TaskID: task.ID.Hex()})
	require.NoError(t, err)

	yes := true
	updated, err := svc.Update(ctx, todo.ID.Hex(), &todos.UpdateTodoRequest{Completed: &yes})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "step", updated.Title)

	_, err = svc.Update(ctx, todo.ID.Hex(), &todos.UpdateTodoRequest{})
	assert.Equal(t, "No fields to update", apperrors.MessageOf(err))

	missing := "507f1f77bcf86cd799439011"
	_, err = svc.Update(ctx, todo.ID.Hex(), &todos.UpdateTodoRequest{TaskID: &missing})
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	bad := "zzz"
	_, err = svc.Update(ctx, todo.ID.Hex(), &todos.UpdateTodoRequest{TaskID: &bad})
	assert.Equal(t, "taskId must be a valid id", apperrors.MessageOf(err))

	_, err = svc.Update(ctx, primitive.NewObjectID().Hex(), &todos.UpdateTodoRequest{Completed: &yes})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDelete(t *testing.T) {
	svc, task := setup(t)
	ctx := context.Background()

	todo, err := svc.Create(ctx, &todos.CreateTodoRequest{Title: "gone", TaskID: task.ID.Hex()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, todo.ID.Hex()))

	_, err = svc.Get(ctx, todo.ID.Hex())
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, todo.ID.Hex()), apperrors.ErrNotFound))
}
