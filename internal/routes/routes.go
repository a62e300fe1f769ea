package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasktracker/internal/features/dashboard"
	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	"github.com/xyz-asif/tasktracker/internal/features/todos"
	"github.com/xyz-asif/tasktracker/internal/pkg/logger"
	"github.com/xyz-asif/tasktracker/internal/pkg/response"
)

// TaskStore is everything the features need from task persistence
type TaskStore interface {
	tasks.Store
	todos.TaskLookup
	dashboard.TaskCounter
}

// TodoStore is everything the features need from todo persistence
type TodoStore interface {
	todos.Store
	tasks.TodoRemover
	dashboard.TodoCounter
}

// Stores bundles the backing stores. Tx is optional.
type Stores struct {
	Tasks  TaskStore
	Todos  TodoStore
	Tx     tasks.Transactor
	Health func(ctx context.Context) error
}

func SetupRoutes(router *gin.Engine, stores Stores) {
	router.GET("/health", healthHandler(stores.Health))

	api := router.Group("/api")

	// Initialize services
	taskService := tasks.NewService(stores.Tasks, stores.Todos, stores.Tx)
	todoService := todos.NewService(stores.Todos, stores.Tasks)
	dashboardService := dashboard.NewService(stores.Tasks, stores.Todos)

	// Initialize handlers
	tasks.RegisterRoutes(api, tasks.NewHandler(taskService))
	todos.RegisterRoutes(api, todos.NewHandler(todoService))
	dashboard.RegisterRoutes(api, dashboard.NewHandler(dashboardService))
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := check(ctx); err != nil {
				logger.Warn("health check failed: %v", err)
				response.ServiceUnavailable(c, "Database unavailable", "DATABASE_ERROR")
				return
			}
		}

		response.Success(c, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	}
}
