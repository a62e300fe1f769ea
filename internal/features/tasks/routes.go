package tasks

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", handler.List)
		tasks.POST("", handler.Create)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}
