// ================== internal/features/tasks/handler.go ==================
package tasks

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasktracker/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List tasks
// @Description List all tasks, newest first, optionally filtered by status or priority
// @Tags tasks
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, in-progress, completed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Success 200 {object} response.APIResponse{data=[]Task}
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:   Status(c.Query("status")),
		Priority: Priority(c.Query("priority")),
	}

	tasks, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, tasks)
}

// Create godoc
// @Summary Create a task
// @Description Create a new task. Status defaults to pending and priority to medium.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task creation data"
// @Success 201 {object} response.APIResponse{data=Task}
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, task)
}

// Get godoc
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse{data=Task}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	task, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Apply a partial update. Only the supplied fields change.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to update"
// @Success 200 {object} response.APIResponse{data=Task}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	task, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Description Delete a task together with all of its todos
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Empty(c)
}
