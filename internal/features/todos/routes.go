// ================== internal/features/todos/routes.go ==================
package todos

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	todos := router.Group("/todos")
	{
		todos.POST("", handler.Create)
		todos.GET("", handler.List)
		todos.GET("/:id", handler.Get)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)
	}
}
