package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/tasktracker/internal/database/memory"
	"github.com/xyz-asif/tasktracker/internal/routes"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type apiTask struct {
	ID       string  `json:"_id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate"`
}

type apiTodo struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	TaskID    string `json:"taskId"`
}

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)
	store := memory.New()
	router := gin.New()
	routes.SetupRoutes(router, routes.Stores{
		Tasks:  store.Tasks(),
		Todos:  store.Todos(),
		Health: store.HealthCheck,
	})
	return &testAPI{t: t, router: router}
}

func (a *testAPI) do(method, path string, body interface{}) (int, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (a *testAPI) createTask(body map[string]interface{}) apiTask {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/tasks", body)
	require.Equal(a.t, http.StatusCreated, code, env.Error)
	var task apiTask
	require.NoError(a.t, json.Unmarshal(env.Data, &task))
	return task
}

func (a *testAPI) createTodo(taskID, title string, completed bool) apiTodo {
	a.t.Helper()
	code, env := a.do(http.MethodPost, "/api/todos", map[string]interface{}{
		"title": title, "taskId": taskID, "completed": completed,
	})
	require.Equal(a.t, http.StatusCreated, code, env.Error)
	var todo apiTodo
	require.NoError(a.t, json.Unmarshal(env.Data, &todo))
	return todo
}

func (a *testAPI) listTodos(taskID string) []apiTodo {
	a.t.Helper()
	code, env := a.do(http.MethodGet, "/api/todos?taskId="+taskID, nil)
	require.Equal(a.t, http.StatusOK, code, env.Error)
	var todos []apiTodo
	require.NoError(a.t, json.Unmarshal(env.Data, &todos))
	return todos
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	code, env := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
}

func TestHealthReportsDatabaseFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memory.New()
	router := gin.New()
	routes.SetupRoutes(router, routes.Stores{
		Tasks:  store.Tasks(),
		Todos:  store.Todos(),
		Health: func(context.Context) error { return errors.New("no primary") },
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "DATABASE_ERROR")
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	api := newTestAPI(t)
	task := api.createTask(map[string]interface{}{"title": "  Write report  "})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "medium", task.Priority)
	assert.Nil(t, task.DueDate)
}

func TestCreateTaskValidation(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name    string
		body    interface{}
		code    string
		message string
	}{
		{"missing title", map[string]interface{}{"title": "   "}, "VALIDATION_FAILED", "title is required"},
		{"bad status", map[string]interface{}{"title": "x", "status": "done"}, "VALIDATION_FAILED", "status must be one of: pending, in-progress, completed"},
		{"bad due date", map[string]interface{}{"title": "x", "dueDate": "tomorrow"}, "VALIDATION_FAILED", "dueDate must be a date (YYYY-MM-DD or RFC3339)"},
		{"malformed json", `{"title":`, "INVALID_JSON", "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := api.do(http.MethodPost, "/api/tasks", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Code)
			assert.Equal(t, tt.message, env.Error)
		})
	}
}

func TestListTasksNewestFirstWithFilters(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	first := api.createTask(map[string]interface{}{"title": "first", "priority": "high"})
	second := api.createTask(map[string]interface{}{"title": "second", "status": "completed"})
	third := api.createTask(map[string]interface{}{"title": "third", "priority": "high"})

	_, env = api.do(http.MethodGet, "/api/tasks", nil)
	var all []apiTask
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	_, env = api.do(http.MethodGet, "/api/tasks?priority=high", nil)
	var high []apiTask
	require.NoError(t, json.Unmarshal(env.Data, &high))
	require.Len(t, high, 2)
	assert.Equal(t, third.ID, high[0].ID)

	_, env = api.do(http.MethodGet, "/api/tasks?status=completed&priority=high", nil)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, env = api.do(http.MethodGet, "/api/tasks?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
}

func TestGetTask(t *testing.T) {
	api := newTestAPI(t)
	task := api.createTask(map[string]interface{}{"title": "find me"})

	code, env := api.do(http.MethodGet, "/api/tasks/"+task.ID, nil)
	require.Equal(t, http.StatusOK, code)
	var got apiTask
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, task.ID, got.ID)

	code, env = api.do(http.MethodGet, "/api/tasks/507f1f77bcf86cd799439011", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", env.Error)
	assert.Equal(t, "NOT_FOUND", env.Code)

	code, env = api.do(http.MethodGet, "/api/tasks/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid task id", env.Error)
}

func TestUpdateTaskIsPartial(t *testing.T) {
	api := newTestAPI(t)
	task := api.createTask(map[string]interface{}{
		"title": "draft", "priority": "low", "dueDate": "2025-12-31",
	})
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-12-31T00:00:00Z", *task.DueDate)

	code, env := api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{"status": "in-progress"})
	require.Equal(t, http.StatusOK, code, env.Error)
	var updated apiTask
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "draft", updated.Title)
	assert.Equal(t, "low", updated.Priority)
	assert.Equal(t, "in-progress", updated.Status)
	require.NotNil(t, updated.DueDate)

	code, env = api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{"dueDate": ""})
	require.Equal(t, http.StatusOK, code, env.Error)
	updated = apiTask{}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Nil(t, updated.DueDate)

	code, env = api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No fields to update", env.Error)

	code, env = api.do(http.MethodPut, "/api/tasks/"+task.ID, map[string]interface{}{"title": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "title is required", env.Error)

	code, _ = api.do(http.MethodPut, "/api/tasks/507f1f77bcf86cd799439011", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestTodoRequiresExistingTask(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(http.MethodPost, "/api/todos", map[string]interface{}{
		"title": "orphan", "taskId": "507f1f77bcf86cd799439011",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "Task 507f1f77bcf86cd799439011 does not exist", env.Error)

	code, env = api.do(http.MethodPost, "/api/todos", map[string]interface{}{"title": "no task"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "taskId is required", env.Error)

	code, env = api.do(http.MethodGet, "/api/todos", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "taskId is required", env.Error)
}

func TestTodoLifecycle(t *testing.T) {
	api := newTestAPI(t)
	task := api.createTask(map[string]interface{}{"title": "parent"})

	a := api.createTodo(task.ID, "a", false)
	b := api.createTodo(task.ID, "b", true)
	assert.Equal(t, task.ID, a.TaskID)

	todos := api.listTodos(task.ID)
	require.Len(t, todos, 2)
	assert.Equal(t, b.ID, todos[0].ID)
	assert.Equal(t, a.ID, todos[1].ID)

	code, env := api.do(http.MethodGet, "/api/todos?taskId="+task.ID+"&completed=true", nil)
	require.Equal(t, http.StatusOK, code)
	var done []apiTodo
	require.NoError(t, json.Unmarshal(env.Data, &done))
	require.Len(t, done, 1)
	assert.Equal(t, b.ID, done[0].ID)

	code, env = api.do(http.MethodGet, "/api/todos?taskId="+task.ID+"&completed=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "completed must be true or false", env.Error)

	code, env = api.do(http.MethodPut, "/api/todos/"+a.ID, map[string]interface{}{"completed": true})
	require.Equal(t, http.StatusOK, code, env.Error)
	var toggled apiTodo
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.True(t, toggled.Completed)
	assert.Equal(t, "a", toggled.Title)

	code, _ = api.do(http.MethodPut, "/api/todos/"+a.ID, map[string]interface{}{"taskId": "507f1f77bcf86cd799439011"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodDelete, "/api/todos/"+a.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = api.do(http.MethodGet, "/api/todos/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Todo not found", env.Error)

	code, _ = api.do(http.MethodDelete, "/api/todos/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteTaskCascadesToTodos(t *testing.T) {
	api := newTestAPI(t)
	doomed := api.createTask(map[string]interface{}{"title": "doomed"})
	kept := api.createTask(map[string]interface{}{"title": "kept"})

	todo := api.createTodo(doomed.ID, "one", false)
	api.createTodo(doomed.ID, "two", true)
	survivor := api.createTodo(kept.ID, "survivor", false)

	code, env := api.do(http.MethodDelete, "/api/tasks/"+doomed.ID, nil)
	require.Equal(t, http.StatusOK, code, env.Error)
	assert.True(t, env.Success)

	code, _ = api.do(http.MethodGet, "/api/tasks/"+doomed.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	assert.Empty(t, api.listTodos(doomed.ID))
	code, _ = api.do(http.MethodGet, "/api/todos/"+todo.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	remaining := api.listTodos(kept.ID)
	require.Len(t, remaining, 1)
	assert.Equal(t, survivor.ID, remaining[0].ID)

	code, env = api.do(http.MethodDelete, "/api/tasks/"+doomed.ID, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", env.Error)
}

func TestDashboard(t *testing.T) {
	api := newTestAPI(t)

	code, env := api.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"tasks": {"total": 0, "pending": 0, "inProgress": 0, "completed": 0,
			"byPriority": {"high": 0, "medium": 0, "low": 0}},
		"todos": {"total": 0, "completed": 0, "pending": 0},
		"recentTasks": []
	}`, string(env.Data))

	t1 := api.createTask(map[string]interface{}{"title": "t1", "priority": "high", "status": "pending"})
	api.createTask(map[string]interface{}{"title": "t2", "priority": "high", "status": "completed"})
	api.createTask(map[string]interface{}{"title": "t3", "priority": "low", "status": "pending"})

	api.createTodo(t1.ID, "a", true)
	api.createTodo(t1.ID, "b", false)
	api.createTodo(t1.ID, "c", false)

	code, env = api.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)

	var stats struct {
		Tasks struct {
			Total      int64 `json:"total"`
			Pending    int64 `json:"pending"`
			InProgress int64 `json:"inProgress"`
			Completed  int64 `json:"completed"`
			ByPriority struct {
				High   int64 `json:"high"`
				Medium int64 `json:"medium"`
				Low    int64 `json:"low"`
			} `json:"byPriority"`
		} `json:"tasks"`
		Todos struct {
			Total     int64 `json:"total"`
			Completed int64 `json:"completed"`
			Pending   int64 `json:"pending"`
		} `json:"todos"`
		RecentTasks []apiTask `json:"recentTasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))

	assert.Equal(t, int64(3), stats.Tasks.Total)
	assert.Equal(t, int64(2), stats.Tasks.Pending)
	assert.Equal(t, int64(0), stats.Tasks.InProgress)
	assert.Equal(t, int64(1), stats.Tasks.Completed)
	assert.Equal(t, int64(1), stats.Tasks.ByPriority.High)
	assert.Equal(t, int64(0), stats.Tasks.ByPriority.Medium)
	assert.Equal(t, int64(1), stats.Tasks.ByPriority.Low)

	assert.Equal(t, int64(3), stats.Todos.Total)
	assert.Equal(t, int64(1), stats.Todos.Completed)
	assert.Equal(t, stats.Todos.Total-stats.Todos.Completed, stats.Todos.Pending)

	require.Len(t, stats.RecentTasks, 3)
	assert.Equal(t, "t3", stats.RecentTasks[0].Title)
}

func TestDashboardLimitsRecentTasks(t *testing.T) {
	api := newTestAPI(t)
	for i := 0; i < 7; i++ {
		api.createTask(map[string]interface{}{"title": "task"})
	}

	_, env := api.do(http.MethodGet, "/api/dashboard", nil)
	var stats struct {
		RecentTasks []apiTask `json:"recentTasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Len(t, stats.RecentTasks, 5)
}
