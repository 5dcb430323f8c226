package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
)

const rawBodyKey = "raw_body"

// BodyLimit caps the request body at n bytes. A route-level limit replaces
// the group default instead of nesting under it.
func BodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httperr.HTTPError{
				Code:    "payload_too_large",
				Message: "Request body too large.",
			})
			return
		}

		body, ok := c.Value(rawBodyKey).(io.ReadCloser)
		if !ok {
			body = c.Request.Body
			c.Set(rawBodyKey, body)
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, body, n)

		c.Next()
	}
}
