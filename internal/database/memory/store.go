// Package memory keeps tasks and todos in process memory. It backs
// STORE=memory for running without MongoDB and doubles as the test store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	"github.com/xyz-asif/tasktracker/internal/features/todos"
)

type taskRecord struct {
	task tasks.Task
	seq  uint64
}

type todoRecord struct {
	todo todos.Todo
	seq  uint64
}

// Store holds both collections behind one lock.
type Store struct {
	mu    sync.RWMutex
	seq   uint64
	tasks map[primitive.ObjectID]*taskRecord
	todos map[primitive.ObjectID]*todoRecord
	now   func() time.Time
}

func New() *Store {
	return &Store{
		tasks: make(map[primitive.ObjectID]*taskRecord),
		todos: make(map[primitive.ObjectID]*todoRecord),
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// Tasks returns the task collection view
func (s *Store) Tasks() *TaskStore {
	return &TaskStore{s: s}
}

// Todos returns the todo collection view
func (s *Store) Todos() *TodoStore {
	return &TodoStore{s: s}
}

// HealthCheck always succeeds
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

type TaskStore struct {
	s *Store
}

func (t *TaskStore) Create(ctx context.Context, task *tasks.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	now := t.s.now()
	task.ID = primitive.NewObjectID()
	task.CreatedAt = now
	task.UpdatedAt = now
	t.s.tasks[task.ID] = &taskRecord{task: *task, seq: t.s.nextSeq()}
	return nil
}

func (t *TaskStore) GetByID(ctx context.Context, id primitive.ObjectID) (*tasks.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	rec, ok := t.s.tasks[id]
	if !ok {
		return nil, nil
	}
	task := rec.task
	return &task, nil
}

func (t *TaskStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	task, err := t.GetByID(ctx, id)
	return task != nil, err
}

func (t *TaskStore) Update(ctx context.Context, id primitive.ObjectID, patch tasks.Patch) (*tasks.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	rec, ok := t.s.tasks[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&rec.task)
	rec.task.UpdatedAt = t.s.now()
	task := rec.task
	return &task, nil
}

func (t *TaskStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.tasks[id]; !ok {
		return 0, nil
	}
	delete(t.s.tasks, id)
	return 1, nil
}

func (t *TaskStore) List(ctx context.Context, filter tasks.ListFilter) ([]tasks.Task, error) {
	return t.collect(ctx, 0, func(task *tasks.Task) bool {
		return (filter.Status == "" || task.Status == filter.Status) &&
			(filter.Priority == "" || task.Priority == filter.Priority)
	})
}

func (t *TaskStore) Recent(ctx context.Context, limit int) ([]tasks.Task, error) {
	return t.collect(ctx, limit, func(*tasks.Task) bool { return true })
}

func (t *TaskStore) CountAll(ctx context.Context) (int64, error) {
	return t.count(ctx, func(*tasks.Task) bool { return true })
}

func (t *TaskStore) CountByStatus(ctx context.Context, status tasks.Status) (int64, error) {
	return t.count(ctx, func(task *tasks.Task) bool { return task.Status == status })
}

func (t *TaskStore) CountOpenByPriority(ctx context.Context, priority tasks.Priority) (int64, error) {
	return t.count(ctx, func(task *tasks.Task) bool {
		return task.Priority == priority && task.Status != tasks.StatusCompleted
	})
}

func (t *TaskStore) count(ctx context.Context, match func(*tasks.Task) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var n int64
	for _, rec := range t.s.tasks {
		if match(&rec.task) {
			n++
		}
	}
	return n, nil
}

// collect returns matching tasks newest first; limit <= 0 means all
func (t *TaskStore) collect(ctx context.Context, limit int, match func(*tasks.Task) bool) ([]tasks.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	recs := make([]*taskRecord, 0, len(t.s.tasks))
	for _, rec := range t.s.tasks {
		if match(&rec.task) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].task.CreatedAt.Equal(recs[j].task.CreatedAt) {
			return recs[i].task.CreatedAt.After(recs[j].task.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	out := make([]tasks.Task, len(recs))
	for i, rec := range recs {
		out[i] = rec.task
	}
	return out, nil
}

type TodoStore struct {
	s *Store
}

func (t *TodoStore) Create(ctx context.Context, todo *todos.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	now := t.s.now()
	todo.ID = primitive.NewObjectID()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	t.s.todos[todo.ID] = &todoRecord{todo: *todo, seq: t.s.nextSeq()}
	return nil
}

func (t *TodoStore) GetByID(ctx context.Context, id primitive.ObjectID) (*todos.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	rec, ok := t.s.todos[id]
	if !ok {
		return nil, nil
	}
	todo := rec.todo
	return &todo, nil
}

func (t *TodoStore) Update(ctx context.Context, id primitive.ObjectID, patch todos.Patch) (*todos.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	rec, ok := t.s.todos[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&rec.todo)
	rec.todo.UpdatedAt = t.s.now()
	todo := rec.todo
	return &todo, nil
}

func (t *TodoStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.todos[id]; !ok {
		return 0, nil
	}
	delete(t.s.todos, id)
	return 1, nil
}

func (t *TodoStore) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	var n int64
	for id, rec := range t.s.todos {
		if rec.todo.TaskID == taskID {
			delete(t.s.todos, id)
			n++
		}
	}
	return n, nil
}

func (t *TodoStore) List(ctx context.Context, query todos.ListQuery) ([]todos.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	recs := make([]*todoRecord, 0)
	for _, rec := range t.s.todos {
		if rec.todo.TaskID != query.TaskID {
			continue
		}
		if query.Completed != nil && rec.todo.Completed != *query.Completed {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].todo.CreatedAt.Equal(recs[j].todo.CreatedAt) {
			return recs[i].todo.CreatedAt.After(recs[j].todo.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	out := make([]todos.Todo, len(recs))
	for i, rec := range recs {
		out[i] = rec.todo
	}
	return out, nil
}

func (t *TodoStore) CountAll(ctx context.Context) (int64, error) {
	return t.count(ctx, func(*todos.Todo) bool { return true })
}

func (t *TodoStore) CountCompleted(ctx context.Context) (int64, error) {
	return t.count(ctx, func(todo *todos.Todo) bool { return todo.Completed })
}

func (t *TodoStore) count(ctx context.Context, match func(*todos.Todo) bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var n int64
	for _, rec := range t.s.todos {
		if match(&rec.todo) {
			n++
		}
	}
	return n, nil
}
