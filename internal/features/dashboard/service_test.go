package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

type fakeTasks struct {
	byStatus   map[tasks.Status]int64
	byPriority map[tasks.Priority]int64
	recent     []tasks.Task
	err        error
}

func (f *fakeTasks) CountAll(context.Context) (int64, error) {
	var n int64
	for _, c := range f.byStatus {
		n += c
	}
	return n, nil
}

func (f *fakeTasks) CountByStatus(_ context.Context, s tasks.Status) (int64, error) {
	return f.byStatus[s], nil
}

func (f *fakeTasks) CountOpenByPriority(_ context.Context, p tasks.Priority) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.byPriority[p], nil
}

func (f *fakeTasks) Recent(_ context.Context, limit int) ([]tasks.Task, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeTodos struct {
	total, completed int64
}

func (f fakeTodos) CountAll(context.Context) (int64, error)       { return f.total, nil }
func (f fakeTodos) CountCompleted(context.Context) (int64, error) { return f.completed, nil }

func TestStats(t *testing.T) {
	svc := NewService(&fakeTasks{
		byStatus: map[tasks.Status]int64{
			tasks.StatusPending: 4, tasks.StatusInProgress: 2, tasks.StatusCompleted: 3,
		},
		byPriority: map[tasks.Priority]int64{tasks.PriorityHigh: 1, tasks.PriorityLow: 5},
		recent:     make([]tasks.Task, 7),
	}, fakeTodos{total: 10, completed: 4})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, TaskStats{
		Total: 9, Pending: 4, InProgress: 2, Completed: 3,
		ByPriority: PriorityStats{High: 1, Medium: 0, Low: 5},
	}, stats.Tasks)
	assert.Equal(t, TodoStats{Total: 10, Completed: 4, Pending: 6}, stats.Todos)
	assert.Len(t, stats.RecentTasks, RecentTaskLimit)
}

func TestStatsPendingIsNotClamped(t *testing.T) {
	// counts come from separate queries and may race with writes
	svc := NewService(&fakeTasks{}, fakeTodos{total: 2, completed: 3})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(-1), stats.Todos.Pending)
	assert.NotNil(t, stats.RecentTasks)
	assert.Empty(t, stats.RecentTasks)
}

func TestStatsFailure(t *testing.T) {
	svc := NewService(&fakeTasks{err: errors.New("timeout")}, fakeTodos{})

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
	assert.Equal(t, "Failed to load dashboard stats", apperrors.MessageOf(err))
}
