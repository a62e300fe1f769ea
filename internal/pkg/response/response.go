package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/tasktracker/internal/pkg/logger"
	apperrors "github.com/xyz-asif/tasktracker/pkg/errors"
)

// APIResponse is the envelope shared by every endpoint
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty" example:"Task not found"`
	Code    string      `json:"code,omitempty" example:"NOT_FOUND"`
}

// successBody always carries data so empty lists render as [].
type successBody struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, successBody{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successBody{
		Success: true,
		Data:    data,
	})
}

// Empty sends a 200 OK with an empty object as data
func Empty(c *gin.Context) {
	Success(c, struct{}{})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// TooManyRequests sends a 429 error
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message, "RATE_LIMITED")
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	logger.Debug("bind json: %v", err)
	BadRequest(c, "Invalid request format", "INVALID_JSON")
}

// ValidationFailed handles validation errors
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// DatabaseError handles database operation errors
func DatabaseError(c *gin.Context, message string) {
	InternalServerError(c, message, "DATABASE_ERROR")
}

// FromError maps a service error onto the matching status code.
func FromError(c *gin.Context, err error) {
	message := apperrors.MessageOf(err)

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		ValidationFailed(c, message)
	case apperrors.KindNotFound:
		NotFound(c, message, "NOT_FOUND")
	case apperrors.KindStorage:
		logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		DatabaseError(c, message)
	default:
		logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		InternalServerError(c, message, "INTERNAL_ERROR")
	}
}
