package dashboard

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

// GetStats godoc
// @Summary Dashboard statistics
// @Description Task counts by status and open-task counts by priority, todo totals, and the five newest tasks
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse{data=Stats}
// @Failure 500 {object} response.APIResponse
// @Router /dashboard [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, stats)
}
