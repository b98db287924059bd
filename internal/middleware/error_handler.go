package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmate-api/internal/constants"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
)

// ErrorHandler turns errors pushed with c.Error into a JSON response once the
// handler returns. Store failures are normalized; when expose is set the generic
// 500 carries the underlying message.
func ErrorHandler(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("request %s %s %s failed: %v",
			c.GetString(constants.ContextKeyRequestID), c.Request.Method, c.Request.URL.Path, err)

		if c.Writer.Written() {
			return
		}

		status, body := apierrors.Normalize(err, expose)
		c.AbortWithStatusJSON(status, body)
	}
}

// NotFound answers requests that matched no route
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		apierrors.RespondWithError(c, http.StatusNotFound, apierrors.NewAPIError(
			apierrors.ErrNotFound.Title,
			"Endpoint "+c.Request.Method+" "+c.Request.URL.RequestURI()+" not found",
		))
	}
}
