// ================== internal/features/todos/handler.go ==================
package todos

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasktracker/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create a new todo
// @Description Create a todo under an existing task
// @Tags todos
// @Accept json
// @Produce json
// @Param request body CreateTodoRequest true "Todo creation data"
// @Success 201 {object} response.APIResponse{data=Todo}
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	todo, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, todo)
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.APIResponse{data=Todo}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	todo, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, todo)
}

// Update godoc
// @Summary Update a todo
// @Description Partially update a todo, including toggling completed
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body UpdateTodoRequest true "Todo update data"
// @Success 200 {object} response.APIResponse{data=Todo}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	todo, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, todo)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Empty(c)
}

// List godoc
// @Summary List todos of a task
// @Description Get the todos of one task, newest first
// @Tags todos
// @Produce json
// @Param taskId query string true "Owning task ID"
// @Param completed query bool false "Filter by completion status"
// @Success 200 {object} response.APIResponse{data=[]Todo}
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	var completed *bool
	if completedStr := c.Query("completed"); completedStr != "" {
		val, err := strconv.ParseBool(completedStr)
		if err != nil {
			response.ValidationFailed(c, "completed must be true or false")
			return
		}
		completed = &val
	}

	todos, err := h.service.ListByTask(c.Request.Context(), c.Query("taskId"), completed)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, todos)
}
