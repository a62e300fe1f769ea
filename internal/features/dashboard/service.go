package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

// TaskCounter is satisfied by tasks.Repository
type TaskCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status tasks.Status) (int64, error)
	CountOpenByPriority(ctx context.Context, priority tasks.Priority) (int64, error)
	Recent(ctx context.Context, limit int) ([]tasks.Task, error)
}

// TodoCounter is satisfied by todos.Repository
type TodoCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type Service struct {
	tasks TaskCounter
	todos TodoCounter
}

func NewService(tasks TaskCounter, todos TodoCounter) *Service {
	return &Service{tasks: tasks, todos: todos}
}

// Stats runs every count as an independent query. There is no shared
// snapshot, so figures may disagree slightly under concurrent writes.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	byStatus := func(status tasks.Status) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) {
			return s.tasks.CountByStatus(ctx, status)
		}
	}
	openByPriority := func(priority tasks.Priority) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) {
			return s.tasks.CountOpenByPriority(ctx, priority)
		}
	}

	count(&stats.Tasks.Total, s.tasks.CountAll)
	count(&stats.Tasks.Pending, byStatus(tasks.StatusPending))
	count(&stats.Tasks.InProgress, byStatus(tasks.StatusInProgress))
	count(&stats.Tasks.Completed, byStatus(tasks.StatusCompleted))

	count(&stats.Tasks.ByPriority.High, openByPriority(tasks.PriorityHigh))
	count(&stats.Tasks.ByPriority.Medium, openByPriority(tasks.PriorityMedium))
	count(&stats.Tasks.ByPriority.Low, openByPriority(tasks.PriorityLow))

	count(&stats.Todos.Total, s.todos.CountAll)
	count(&stats.Todos.Completed, s.todos.CountCompleted)

	g.Go(func() error {
		recent, err := s.tasks.Recent(gctx, RecentTaskLimit)
		if err != nil {
			return err
		}
		stats.RecentTasks = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.Storage("Failed to load dashboard stats", err)
	}

	stats.Todos.Pending = stats.Todos.Total - stats.Todos.Completed
	if stats.RecentTasks == nil {
		stats.RecentTasks = []tasks.Task{}
	}

	return &stats, nil
}
