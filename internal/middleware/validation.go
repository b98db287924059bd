package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
	"github.com/yukikurage/taskmate-api/internal/validation"
)

// validateBody binds the JSON body into T and runs check on it. The body is cached
// by ShouldBindBodyWith so the handler can bind it again.
func validateBody[T any](check func(T) []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			apierrors.RespondWithError(c, http.StatusBadRequest, apierrors.ErrInvalidInput)
			c.Abort()
			return
		}

		if errs := check(req); len(errs) > 0 {
			apierrors.Validation(c, errs)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ValidateUserInput checks a registration body
func ValidateUserInput() gin.HandlerFunc {
	return validateBody(validation.User)
}

// ValidateUserUpdate checks the fields present in a profile update
func ValidateUserUpdate() gin.HandlerFunc {
	return validateBody(validation.UserUpdate)
}

// ValidateTaskInput checks a task creation body
func ValidateTaskInput() gin.HandlerFunc {
	return validateBody(validation.Task)
}

// ValidateTaskUpdate checks a partial task update
func ValidateTaskUpdate() gin.HandlerFunc {
	return validateBody(validation.TaskUpdate)
}

// ValidateCompletionInput checks a completion creation body
func ValidateCompletionInput() gin.HandlerFunc {
	return validateBody(validation.Completion)
}

// ValidateCompletionUpdate checks a completion update body
func ValidateCompletionUpdate() gin.HandlerFunc {
	return validateBody(validation.CompletionUpdate)
}
