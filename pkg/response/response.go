package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

// ErrorBody is the single error contract returned to clients.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody confirms an operation that returns no entity.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON wraps data under name, e.g. {"user": {...}} or {"users": [...]}.
func JSON(c *gin.Context, status int, name string, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, gin.H{name: data})
}

// OK responds with HTTP 200 wrapping data under name.
func OK(c *gin.Context, name string, data interface{}) {
	JSON(c, http.StatusOK, name, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, name string, data interface{}) {
	JSON(c, http.StatusCreated, name, data)
}

// Message responds with HTTP 200 and a confirmation message.
func Message(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error sends an error response. Only the public message of the normalised
// error reaches the client; the wrapped cause is attached to the gin context
// for the request logger.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.Header("Cache-Control", "no-store")
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Error: appErr.Message})
}
