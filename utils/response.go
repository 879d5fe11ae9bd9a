package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the success envelope returned by every endpoint
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError is the error payload nested under "error" in failure responses
type APIError struct {
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends a 200 response
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 response
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination sends a paginated 200 response
func SuccessWithPagination(c *gin.Context, message string, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
		"pagination": gin.H{
			"total":       pagination.Total,
			"page":        pagination.Page,
			"per_page":    pagination.Limit,
			"total_pages": pagination.LastPage,
		},
	})
}

// Error sends an error response with the given status code
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": APIError{
			Message: message,
			Details: details,
		},
	})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusBadRequest, message, details)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden sends a 403 Forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusConflict, message, details)
}

// InternalServerError sends a 500 response with a generic message;
// the real cause belongs in the server log, not the client payload
func InternalServerError(c *gin.Context, message string, details interface{}) {
	Error(c, http.StatusInternalServerError, message, details)
}
