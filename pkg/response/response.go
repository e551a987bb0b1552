package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every error the API returns.
// Successful responses carry the bare record; only failures are wrapped.
type ErrorBody struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// Error writes a JSON error body with the given status and error class
func Error(c *gin.Context, status int, class, message string) {
	c.JSON(status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     class,
		Message:   message,
	})
}

// BadRequest writes a 400 response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, "Bad Request", message)
}

// ValidationFailed writes a 400 response carrying a field->message map
func ValidationFailed(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   "Validation failed",
		Details:   details,
	})
}

// NotFound writes a 404 response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, "Not Found", message)
}

// Conflict writes a 409 response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, "Conflict", message)
}

// InternalError writes a 500 response. The underlying error is never
// exposed to the caller; log it before calling this.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
}
