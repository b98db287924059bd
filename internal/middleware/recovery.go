package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmate-api/internal/constants"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
)

// RecoveryWithLog logs a panic with its stack and answers with the generic 500 body
func RecoveryWithLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered (request %s): %v\n%s",
					c.GetString(constants.ContextKeyRequestID), err, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierrors.ErrInternal)
			}
		}()
		c.Next()
	}
}
