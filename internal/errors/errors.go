package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// APIError represents a standardized API error response
type APIError struct {
	Title   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Title + ": " + e.Message
	}
	return e.Title
}

// NewAPIError creates a new APIError
func NewAPIError(title, message string) *APIError {
	return &APIError{
		Title:   title,
		Message: message,
	}
}

// ValidationError carries every failed check of a request body, in order
type ValidationError struct {
	Errors []string `json:"errors"`
}

// Predefined errors
var (
	ErrInvalidInput = NewAPIError("Invalid request body", "")
	ErrConflict     = NewAPIError("Conflict", "A record with this data already exists")
	ErrNotFound     = NewAPIError("Not Found", "The requested resource was not found")
	ErrInternal     = NewAPIError("Server Error", "Something went wrong")
)

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message, ""))
}

// Validation sends a 400 response listing every failed check
func Validation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ValidationError{Errors: messages})
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(message, ""))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(message, ""))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	RespondWithError(c, http.StatusConflict, NewAPIError(message, ""))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message, ""))
}

// Normalize maps an error that no handler translated into a status code and body.
// Structured store failures keep their meaning; anything else becomes a generic 500
// whose message carries the underlying error only when expose is set.
func Normalize(err error, expose bool) (int, *APIError) {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusConflict, ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, ErrNotFound
	}

	if expose && err != nil {
		return http.StatusInternalServerError, NewAPIError(ErrInternal.Title, err.Error())
	}
	return http.StatusInternalServerError, ErrInternal
}
