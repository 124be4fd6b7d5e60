package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standardized API response body.
// Count is only present on list responses, Message on status-only responses.
type Envelope struct {
	Success bool              `json:"success"`
	Count   *int              `json:"count,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// OK sends a successful JSON response carrying data.
func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// List sends a successful response with a count alongside the data slice.
func List(c *gin.Context, statusCode int, count int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Count: &count, Data: data})
}

// Message sends a successful status-only response.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: true, Message: message})
}

// Fail sends an error response with a message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// FailValidation sends a 400 carrying field-level validation details.
func FailValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  fields,
	})
}

// NotFound sends the bare 404 body used for missing entities.
// The success key is intentionally absent on this shape.
func NotFound(c *gin.Context, resource, id string) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": fmt.Sprintf("%s not found with id of %s", resource, id),
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: message})
}
